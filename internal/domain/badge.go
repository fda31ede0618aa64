package domain

const (
	BadgeFirstTrade    = "first_trade"
	BadgeMasterTeacher = "master_teacher"
)

var badgeCatalog = map[string]Badge{
	BadgeFirstTrade: {
		ID:          BadgeFirstTrade,
		Name:        "First Trade",
		Description: "Completed the first skill trade.",
		Icon:        "handshake",
	},
	BadgeMasterTeacher: {
		ID:          BadgeMasterTeacher,
		Name:        "Master Teacher",
		Description: "Taught in ten completed trades.",
		Icon:        "school",
	},
}

// LookupBadge returns the catalog entry for badgeID, or nil when it is unknown.
func LookupBadge(badgeID string) *Badge {
	b, ok := badgeCatalog[badgeID]
	if !ok {
		return nil
	}
	return &b
}

func BadgeCatalog() []Badge {
	return []Badge{badgeCatalog[BadgeFirstTrade], badgeCatalog[BadgeMasterTeacher]}
}
