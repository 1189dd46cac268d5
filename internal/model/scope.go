package model

// Scope identifies who issued a command and over which channel.
type Scope struct {
	UserID  string
	Channel string
}

const (
	ChannelHTTP     = "http"
	ChannelTelegram = "telegram"
)
