package bootstrap

// Log messages for the shutdown sequence
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgStoppingScheduler    = "Stopping day scheduler"
	LogMsgStoppingWorkerPool   = "Stopping worker pool"
	LogMsgServerStopped        = "Server stopped"
)
