package valueobjects

type PropertyStatus string

const (
	PropertyStatusPending  PropertyStatus = "pending"
	PropertyStatusApproved PropertyStatus = "approved"
	PropertyStatusRejected PropertyStatus = "rejected"
	PropertyStatusSold     PropertyStatus = "sold"
)

// Action is something that moves a listing between statuses.
type Action string

const (
	ActionApprove  Action = "approve"
	ActionReject   Action = "reject"
	ActionEdit     Action = "edit"
	ActionMarkSold Action = "mark_sold"
)

var validStatuses = map[PropertyStatus]bool{
	PropertyStatusPending:  true,
	PropertyStatusApproved: true,
	PropertyStatusRejected: true,
	PropertyStatusSold:     true,
}

// propertyTransitions is the complete lifecycle: from-status x action -> to-status.
// A missing entry is an illegal transition. sold has no outgoing arcs, so a
// sold listing can no longer be edited or moderated.
var propertyTransitions = map[PropertyStatus]map[Action]PropertyStatus{
	PropertyStatusPending: {
		ActionApprove: PropertyStatusApproved,
		ActionReject:  PropertyStatusRejected,
		ActionEdit:    PropertyStatusPending,
	},
	PropertyStatusApproved: {
		ActionReject:   PropertyStatusRejected,
		ActionMarkSold: PropertyStatusSold,
		ActionEdit:     PropertyStatusPending,
	},
	PropertyStatusRejected: {
		ActionEdit: PropertyStatusPending,
	},
	PropertyStatusSold: {},
}

func ParsePropertyStatus(s string) (PropertyStatus, bool) {
	st := PropertyStatus(s)
	return st, validStatuses[st]
}

func (s PropertyStatus) String() string {
	return string(s)
}

func (s PropertyStatus) IsValid() bool {
	return validStatuses[s]
}

func (s PropertyStatus) IsApproved() bool {
	return s == PropertyStatusApproved
}

// Apply returns the status reached by performing action from s.
func (s PropertyStatus) Apply(action Action) (PropertyStatus, bool) {
	next, ok := propertyTransitions[s][action]
	return next, ok
}

// ModerationAction maps a requested moderation status to its action. Only
// approved and rejected are moderation outcomes.
func ModerationAction(target PropertyStatus) (Action, bool) {
	switch target {
	case PropertyStatusApproved:
		return ActionApprove, true
	case PropertyStatusRejected:
		return ActionReject, true
	default:
		return "", false
	}
}
