package model

// NoticeType represents the severity of a banner notice
type NoticeType string

const (
	// NoticeInfo is the default, neutral notice severity
	NoticeInfo NoticeType = "Info"

	// NoticeSuccess marks a confirmation notice
	NoticeSuccess NoticeType = "Success"

	// NoticeWarning marks a notice the user should read before continuing
	NoticeWarning NoticeType = "Warning"

	// NoticeError marks a failure notice
	NoticeError NoticeType = "Error"
)

// String returns the string representation of NoticeType
func (nt NoticeType) String() string {
	return string(nt)
}

// IsSevere returns true if the notice should be rendered with an attention
// color (warning or error)
func (nt NoticeType) IsSevere() bool {
	return nt == NoticeWarning || nt == NoticeError
}

// Valid returns true for one of the defined severities
func (nt NoticeType) Valid() bool {
	switch nt {
	case NoticeInfo, NoticeSuccess, NoticeWarning, NoticeError:
		return true
	default:
		return false
	}
}
