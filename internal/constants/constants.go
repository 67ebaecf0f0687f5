package constants

const (
	// SessionCookieName is the name of the session cookie issued at login.
	SessionCookieName = "task_session"

	// ContextKeyUsername is the session and context key holding the
	// authenticated username.
	ContextKeyUsername = "username"

	// ContextKeyIsAdmin is the session and context key holding the admin flag.
	ContextKeyIsAdmin = "is_admin"

	// MaxSubjectInLog caps how much of a message subject is interpolated
	// into a SEND_MESSAGE audit entry.
	MaxSubjectInLog = 50

	// LogExportFilename is the attachment name for the CSV log export.
	LogExportFilename = "logs.csv"
)
