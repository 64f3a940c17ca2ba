package app

// Guard exposes the panic boundary for testing.
var Guard = guard
