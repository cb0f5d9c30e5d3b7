package formaterror

import "strings"

// FormatError turns a raw store error message into a client-safe message map.
// Constraint violations that are not absorbed by conflict suppression land
// here before being surfaced on a 500.
func FormatError(err string) map[string]string {
	errorMessages := make(map[string]string)

	lowered := strings.ToLower(err)
	if strings.Contains(lowered, "email") {
		errorMessages["Taken_email"] = "Email Already Taken"
	}
	if strings.Contains(lowered, "foreign key") {
		errorMessages["Unknown_reference"] = "Referenced record does not exist"
	}
	if strings.Contains(lowered, "self_follow") {
		errorMessages["Self_follow"] = "Cannot follow yourself"
	}
	if len(errorMessages) == 0 {
		errorMessages["Incorrect_details"] = "Incorrect Details"
	}
	return errorMessages
}
