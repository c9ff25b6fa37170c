package pins

// releasePorts lets a test take the ports again
func releasePorts() {
	portsTaken.Store(false)
}
