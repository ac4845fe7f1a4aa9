package relays

import (
	"log/slog"

	"github.com/joy-dx/gopresign/dto"
	relayDTO "github.com/joy-dx/relay/dto"
)

const Channel relayDTO.EventChannel = "gopresign"

// RlySvcLog Plain service lifecycle message.
type RlySvcLog struct {
	Msg string
}

func (e RlySvcLog) RelayChannel() relayDTO.EventChannel { return Channel }
func (e RlySvcLog) RelayType() relayDTO.EventRef        { return "svc.log" }
func (e RlySvcLog) Message() string                     { return e.Msg }
func (e RlySvcLog) ToSlog() []slog.Attr {
	return []slog.Attr{slog.String("msg", e.Msg)}
}

// RlyPresign One presign attempt made through the service layer.
type RlyPresign struct {
	Bucket     string
	Key        string
	Operation  string
	URL        string
	Downgraded bool
	Msg        string
}

func (e RlyPresign) RelayChannel() relayDTO.EventChannel { return Channel }
func (e RlyPresign) RelayType() relayDTO.EventRef        { return "svc.presign" }
func (e RlyPresign) Message() string                     { return e.Msg }
func (e RlyPresign) ToSlog() []slog.Attr {
	return []slog.Attr{
		slog.String("bucket", e.Bucket),
		slog.String("key", e.Key),
		slog.String("operation", e.Operation),
		slog.Bool("downgraded", e.Downgraded),
		slog.String("msg", e.Msg),
	}
}

// RlyAddressing One hostname resolution, including silent Auto
// downgrades to path style.
type RlyAddressing struct {
	Bucket     string
	Hostname   string
	Style      dto.AddressingStyle
	Virtual    bool
	Downgraded bool
}

func (e RlyAddressing) RelayChannel() relayDTO.EventChannel { return Channel }
func (e RlyAddressing) RelayType() relayDTO.EventRef        { return "svc.addressing" }
func (e RlyAddressing) Message() string {
	if e.Downgraded {
		return "virtual addressing downgraded to path style for bucket " + e.Bucket
	}
	return "resolved " + e.Hostname
}
func (e RlyAddressing) ToSlog() []slog.Attr {
	return []slog.Attr{
		slog.String("bucket", e.Bucket),
		slog.String("hostname", e.Hostname),
		slog.String("style", e.Style.String()),
		slog.Bool("virtual", e.Virtual),
		slog.Bool("downgraded", e.Downgraded),
	}
}
