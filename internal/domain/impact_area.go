package domain

// ImpactArea is one entry in the fixed impact taxonomy. Applicability narrows
// which organisation types the tag is offered to.
type ImpactArea struct {
	ID          string    `json:"id"`
	Label       string    `json:"label"`
	Description string    `json:"description"`
	AppliesTo   []OrgType `json:"applies_to"`
}

// MaxImpactAreas is the most tags a single impact update may carry.
const MaxImpactAreas = 3

var allOrgTypes = []OrgType{OrgClub, OrgSchool, OrgCharity, OrgCause}

// ImpactAreas is the fixed taxonomy impact updates are classified against.
var ImpactAreas = []ImpactArea{
	{
		ID:          "community-inclusion",
		Label:       "Community & Inclusion",
		Description: "Bringing people together and making local life more inclusive",
		AppliesTo:   allOrgTypes,
	},
	{
		ID:          "education-learning",
		Label:       "Education & Learning",
		Description: "Teaching, tutoring, scholarships and learning resources",
		AppliesTo:   []OrgType{OrgClub, OrgSchool, OrgCharity},
	},
	{
		ID:          "health-wellbeing",
		Label:       "Health & Wellbeing",
		Description: "Physical and mental health support for members and the community",
		AppliesTo:   allOrgTypes,
	},
	{
		ID:          "sport-participation",
		Label:       "Sport & Participation",
		Description: "Getting more people active through grassroots sport",
		AppliesTo:   []OrgType{OrgClub, OrgSchool},
	},
	{
		ID:          "environment-sustainability",
		Label:       "Environment & Sustainability",
		Description: "Conservation, clean-ups and greener club operations",
		AppliesTo:   allOrgTypes,
	},
	{
		ID:          "arts-culture",
		Label:       "Arts & Culture",
		Description: "Creative programmes, performances and cultural heritage",
		AppliesTo:   []OrgType{OrgClub, OrgSchool, OrgCharity},
	},
	{
		ID:          "emergency-relief",
		Label:       "Emergency & Relief",
		Description: "Direct help for people affected by hardship or disaster",
		AppliesTo:   []OrgType{OrgCharity, OrgCause},
	},
	{
		ID:          "animal-welfare",
		Label:       "Animal Welfare",
		Description: "Rescue, shelter and care for animals",
		AppliesTo:   []OrgType{OrgCharity, OrgCause},
	},
}

// ImpactAreaByID looks up a taxonomy entry. The second return is false for
// unknown IDs.
func ImpactAreaByID(id string) (ImpactArea, bool) {
	for _, area := range ImpactAreas {
		if area.ID == id {
			return area, true
		}
	}
	return ImpactArea{}, false
}

// ImpactAreasFor returns the taxonomy entries applicable to an organisation
// type.
func ImpactAreasFor(orgType OrgType) []ImpactArea {
	var areas []ImpactArea
	for _, area := range ImpactAreas {
		for _, t := range area.AppliesTo {
			if t == orgType {
				areas = append(areas, area)
				break
			}
		}
	}
	return areas
}

// ToggleImpactArea adds the area if absent and removes it if present,
// preserving order. Adding a fourth area is a no-op: the selection is returned
// unchanged.
func ToggleImpactArea(selected ImpactAreaIDs, id string) ImpactAreaIDs {
	for i, existing := range selected {
		if existing == id {
			out := make(ImpactAreaIDs, 0, len(selected)-1)
			out = append(out, selected[:i]...)
			out = append(out, selected[i+1:]...)
			return out
		}
	}
	if len(selected) >= MaxImpactAreas {
		return selected
	}
	out := make(ImpactAreaIDs, 0, len(selected)+1)
	out = append(out, selected...)
	out = append(out, id)
	return out
}
