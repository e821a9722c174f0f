package entities

// Workspace is a scoped temporary directory owned by a single copy operation.
type Workspace struct {
	Path string
}
