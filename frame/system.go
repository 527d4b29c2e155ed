package frame

// System is one stage of a frame. Systems may declare Singleton fields;
// the Scheduler binds them to its Resources on Register.
type System interface {
	Execute(frame *UpdateFrame)
}
