package domain

const (
	LoginPath        = "/login"
	UnauthorizedPath = "/"
)

// Requirement is what a page demands of the visitor.
type Requirement int

const (
	RequireNone Requirement = iota
	RequireStaffOrManager
	RequireManager
)

func (r Requirement) String() string {
	switch r {
	case RequireStaffOrManager:
		return "staff-or-manager"
	case RequireManager:
		return "manager-only"
	default:
		return "none"
	}
}

// Access is the visitor state a guard decides on.
type Access struct {
	HasSession bool
	IsManager  bool
	IsStaff    bool
}

// Decision is the outcome of Guard. When Allowed is false, Redirect names the
// destination; From carries the requested location for a login redirect.
type Decision struct {
	Allowed  bool
	Redirect string
	From     string
}

// Guard decides whether a visitor may open a page with requirement req.
// Manager does not imply staff here, so staff-or-manager checks both flags.
func Guard(a Access, req Requirement, from string) Decision {
	if !a.HasSession {
		return Decision{Redirect: LoginPath, From: from}
	}
	switch req {
	case RequireManager:
		if !a.IsManager {
			return Decision{Redirect: UnauthorizedPath}
		}
	case RequireStaffOrManager:
		if !a.IsManager && !a.IsStaff {
			return Decision{Redirect: UnauthorizedPath}
		}
	}
	return Decision{Allowed: true}
}
