package ecs

// UpdateFrame is passed to every system during one Scheduler.Once call.
type UpdateFrame struct {
	DeltaTime float64
	// Commands collects structural changes that are applied after all
	// systems ran. It is safe to record into from job functions.
	Commands *Commands
	Storage  *Storage
	// Jobs is the scheduler's job runner, or nil if none was configured.
	Jobs *JobRunner
}
