// Package constants defines shared values used across the bot's layouts.
package constants

const (
	// ApproveCommandName promotes a pending member to verified.
	ApproveCommandName = "approve"
	// ApproveMemberOptionName is the user option naming the approval target.
	ApproveMemberOptionName = "member"
	// PendingCommandName lists members awaiting verification.
	PendingCommandName = "pending"

	// PendingPrevButtonCustomID retreats the pending listing by one page.
	PendingPrevButtonCustomID = "pending_prev"
	// PendingNextButtonCustomID advances the pending listing by one page.
	PendingNextButtonCustomID = "pending_next"

	// PendingEmbedColor is the accent color of the pending listing embed.
	PendingEmbedColor = 0x00FF00

	// MemberChunkSize is the page size used when enumerating guild members
	// through the REST API.
	MemberChunkSize = 1000
)
