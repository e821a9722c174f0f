package git

// SplitCredentials exports splitCredentials for testing.
var SplitCredentials = splitCredentials //nolint:gochecknoglobals // test export
