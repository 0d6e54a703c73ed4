package form

import (
	tea "charm.land/bubbletea/v2"

	"github.com/teakit/teakit/widgets"
)

// Prepared forms for the usual cases.

// LoginBlueprint is a username/password form definition.
var LoginBlueprint = Blueprint{
	Items: []Item{
		{Key: "username", Make: func(key string) Element {
			return widgets.TextField(key, "Username")
		}},
		{Key: "password", Groups: []string{"credentials"}, Make: func(key string) Element {
			return widgets.PasswordField(key, "Password")
		}},
	},
	Options: []Option{WithSubmitLabel("Log in")},
}

// Login builds a ready-to-use login form.
func Login(onSubmit func(data map[string]any) tea.Cmd) *Form {
	return LoginBlueprint.New(OnSubmit(onSubmit))
}
