package constants

// CLI Commands
const (
	CmdServe   = "serve"
	CmdFeed    = "feed"
	CmdPending = "pending"
)

// CLI Short Descriptions
const (
	DescRoot    = "the-boards feed and moderation API"
	DescServe   = "Serve /api/data and /api/pending over HTTP"
	DescFeed    = "Fetch, parse and print the boards feed"
	DescPending = "Fetch and print the pending items payload"
)

// Defaults
const (
	DefaultServeAddr = ":3000"
)
