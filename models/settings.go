package models

// Theme values accepted by [Settings].
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Settings is the flat, device-local preference blob.
type Settings struct {
	EmailNotifications bool   `json:"email_notifications"`
	PushNotifications  bool   `json:"push_notifications"`
	ProfilePublic      bool   `json:"profile_public"`
	ShowEmail          bool   `json:"show_email"`
	Theme              string `json:"theme"`
}

// DefaultSettings returns the preferences a fresh device starts with.
func DefaultSettings() Settings {
	return Settings{
		EmailNotifications: true,
		PushNotifications:  false,
		ProfilePublic:      false,
		ShowEmail:          true,
		Theme:              ThemeLight,
	}
}
