package local

import "fmt"

const DefaultChatPrefix = "nachiketa"

// Keys builds the key layout shared by every local record.
type Keys struct {
	chatPrefix string
}

func NewKeys(chatPrefix string) Keys {
	if chatPrefix == "" {
		chatPrefix = DefaultChatPrefix
	}
	return Keys{chatPrefix: chatPrefix}
}

func (k Keys) SessionPrefix() string {
	return k.chatPrefix + "-session-"
}

func (k Keys) Session(sessionId string) string {
	return k.SessionPrefix() + sessionId
}

// MessagePrefix may also match sessions whose id extends sessionId with a
// dash, so readers must still filter on the decoded session id.
func (k Keys) MessagePrefix(sessionId string) string {
	return fmt.Sprintf("%s-message-%s-", k.chatPrefix, sessionId)
}

func (k Keys) Message(sessionId, messageId string) string {
	return k.MessagePrefix(sessionId) + messageId
}

func (k Keys) Tombstone(sessionId string) string {
	return fmt.Sprintf("%s-deleted-%s", k.chatPrefix, sessionId)
}

const (
	recordWellnessProfile    = "wellness_profile"
	recordWellnessEntries    = "wellness_entries"
	recordCompanionSelection = "companion_selection"
)

func (k Keys) userRecord(recordType, userId string) string {
	return fmt.Sprintf("manasfit_%s_%s", recordType, userId)
}

func (k Keys) WellnessProfile(userId string) string {
	return k.userRecord(recordWellnessProfile, userId)
}

func (k Keys) WellnessEntries(userId string) string {
	return k.userRecord(recordWellnessEntries, userId)
}

func (k Keys) CompanionSelection(userId string) string {
	return k.userRecord(recordCompanionSelection, userId)
}

func (k Keys) Theme(userId string) string {
	return "manasfit-theme_" + userId
}

func (k Keys) PetProfile(userId string) string {
	return "petProfile_" + userId
}
