// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Playback operations
	OpPlaybackStart Op = "start playback"
	OpPlaybackSeek  Op = "seek"
	OpVolumeSet     Op = "set volume"

	// Source operations
	OpSourceLoad   Op = "load source"
	OpSourceOpen   Op = "open source"
	OpSourceDecode Op = "decode source"
	OpAudioDevice  Op = "open audio device"

	// Pointer operations
	OpSliderDrag  Op = "start drag"
	OpSliderClick Op = "move slider"

	// Initialization
	OpConfigLoad Op = "load configuration"
	OpMPRISStart Op = "start media controls"
	OpInitialize Op = "initialize application"
)

// EngineOp maps an engine error event's operation name to an Op.
func EngineOp(operation string) Op {
	switch operation {
	case "open":
		return OpSourceOpen
	case "decode":
		return OpSourceDecode
	case "speaker":
		return OpAudioDevice
	case "seek":
		return OpPlaybackSeek
	default:
		return Op(operation)
	}
}

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
