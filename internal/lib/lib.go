// Package lib holds integrations that do not belong to a single layer:
// background jobs on asynq and the Resend email client.
package lib
