package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityInput             = 10
	PriorityMovement          = 20
	PriorityWeapon            = 30
	PriorityMissile           = 40 // After weapon, new missiles resolve the same frame
	PriorityCollision         = 50
	PriorityPickup            = 55
	PriorityBoundInArena      = 60
	PriorityDestroyOutOfArena = 70
	PriorityExpire            = 75
	PriorityDeath             = 80 // After all damage sources
	PrioritySpawn             = 90
	PriorityCascade           = 100 // After every stage that marks
	PriorityCull              = 120 // Terminal destruction
	PriorityUI                = 130 // Read-only, observes the settled frame
	PriorityDiagnostics       = 140
)

// DiagnosticsSampleInterval is the number of frames between telemetry samples
const DiagnosticsSampleInterval = 120
