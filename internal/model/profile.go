package model

// Profile is a single categorical label summarizing the whole four-field
// score vector.
type Profile string

const (
	ProfileMeaningDeficit    Profile = "MEANING_DEFICIT"
	ProfileSafetyDeficit     Profile = "SAFETY_DEFICIT"
	ProfileCapabilityDeficit Profile = "CAPABILITY_DEFICIT"
	ProfileHassleDeficit     Profile = "HASSLE_DEFICIT"
	ProfileUnbalanced        Profile = "UNBALANCED"
	ProfileDeveloping        Profile = "DEVELOPING_POTENTIAL"
	ProfileHighPerforming    Profile = "HIGH_PERFORMING"
	ProfileWellFunctioning   Profile = "WELL_FUNCTIONING"
	ProfileMixed             Profile = "MIXED"
	ProfileInsufficientData  Profile = "INSUFFICIENT_DATA"
)

// DeficitProfile returns the deficiency label for a field.
func DeficitProfile(f Field) Profile {
	switch f {
	case FieldMeaning:
		return ProfileMeaningDeficit
	case FieldSafety:
		return ProfileSafetyDeficit
	case FieldCapability:
		return ProfileCapabilityDeficit
	default:
		return ProfileHassleDeficit
	}
}
