package main

import (
	"gridiron-backend/cmd/gridiron/commands"
	"gridiron-backend/lib/serviceutil"
	"gridiron-backend/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()
	telemetry.SetupFromEnv(ctx, "gridiron")
	commands.ExecuteContext(ctx)
}
