package domain

// WorkspaceSpec locates a measurement workspace on disk.
type WorkspaceSpec struct {
	Root string
}
