package entity

type ToggleType string

const (
	ToggleTypeApp     ToggleType = "app"
	ToggleTypeFeature ToggleType = "feature"
)

func (t ToggleType) IsValid() bool {
	return t == ToggleTypeApp || t == ToggleTypeFeature
}

// Toggle is a global on/off switch for an app or a feature. It is not per-user.
type Toggle struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Enabled  bool   `json:"enabled"`
	Category string `json:"category"`
}

type (
	AppPermission     = Toggle
	FeaturePermission = Toggle
)

// HasAppAccess: root, manager and admin bypass; everybody else gets the enabled
// flag of the matching record, false when there is none.
func HasAppAccess(user User, apps []AppPermission, appID string) bool {
	return hasToggleAccess(user, apps, appID)
}

func HasFeatureAccess(user User, features []FeaturePermission, featureID string) bool {
	return hasToggleAccess(user, features, featureID)
}

// AccessibleToggles filters list down to what user can reach.
func AccessibleToggles(user User, list []Toggle) []Toggle {
	out := make([]Toggle, 0, len(list))

	for _, t := range list {
		if hasToggleAccess(user, list, t.ID) {
			out = append(out, t)
		}
	}

	return out
}

func hasToggleAccess(user User, list []Toggle, id string) bool {
	if bypassesToggles(user.Role) {
		return true
	}

	for _, t := range list {
		if t.ID == id {
			return t.Enabled
		}
	}

	return false
}
