package model

import "time"

// ActivityType classifies a logged client interaction.
type ActivityType string

const (
	ActivityCall         ActivityType = "Call"
	ActivityEmail        ActivityType = "Email"
	ActivityMeeting      ActivityType = "Meeting"
	ActivityProposal     ActivityType = "Proposal"
	ActivityFollowUp     ActivityType = "Follow-up"
	ActivityRegistration ActivityType = "Registration"
)

// ActivityTypes lists the types a user can pick when logging an interaction.
// Registration entries are created automatically on new-client creation.
var ActivityTypes = []ActivityType{
	ActivityCall, ActivityEmail, ActivityMeeting, ActivityProposal, ActivityFollowUp,
}

// ActivityStatus is the completion state of an activity.
type ActivityStatus string

const (
	ActivityCompleted ActivityStatus = "Completed"
	ActivityPending   ActivityStatus = "Pending"
	ActivityCancelled ActivityStatus = "Cancelled"
)

// ActivityStatuses lists all valid activity statuses.
var ActivityStatuses = []ActivityStatus{ActivityCompleted, ActivityPending, ActivityCancelled}

// Activity is one logged interaction with a client. Client references
// the client record by name (see Quote.Client).
type Activity struct {
	ID          string
	Date        time.Time
	Type        ActivityType
	Client      string
	Description string
	Status      ActivityStatus
	NextAction  string
}
