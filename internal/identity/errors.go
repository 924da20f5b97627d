package identity

// Error is the structured failure the identity subsystem hands back to
// callers. Services pass these through unchanged rather than reinterpreting
// them.
type Error struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

func errDuplicateUserName(name string) Error {
	return Error{Code: "DuplicateUserName", Description: "user name '" + name + "' is already taken"}
}

func errDuplicateEmail(email string) Error {
	return Error{Code: "DuplicateEmail", Description: "email '" + email + "' is already taken"}
}

func errUserNotFound() Error {
	return Error{Code: "UserNotFound", Description: "user does not exist"}
}

func errPasswordMismatch() Error {
	return Error{Code: "PasswordMismatch", Description: "incorrect password"}
}

func errInvalidToken() Error {
	return Error{Code: "InvalidToken", Description: "invalid or expired token"}
}

func errStoreFailure(err error) Error {
	return Error{Code: "StoreFailure", Description: err.Error()}
}
