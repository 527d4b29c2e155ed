package frame

// UpdateFrame is handed to every system during one Scheduler.Once call.
type UpdateFrame struct {
	// DeltaTime is the wall-clock time since the previous frame, in seconds.
	DeltaTime float64
	Index     uint64
	Commands  *Commands
	Resources *Resources
}

func newUpdateFrame(dt float64, index uint64, resources *Resources) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Index:     index,
		Commands:  newCommands(),
		Resources: resources,
	}
}
