package matching

import "fmt"

// maxReasons caps the justification list in a MatchResult.
const maxReasons = 3

// reasonsToJoin collects human-readable justifications in a fixed priority
// order (goal, interests, activity, verification, engagement) and truncates
// to the first three that apply. Order is by priority, never by score.
func reasonsToJoin(tribe TribeProfile, goalMatch, interestMatch float64) []string {
	reasons := make([]string, 0, maxReasons)

	if goalMatch > 80 {
		reasons = append(reasons, fmt.Sprintf("Perfectly aligned with your %s goals", tribe.Goal))
	} else if goalMatch > 60 {
		reasons = append(reasons, fmt.Sprintf("Supports your %s journey", tribe.Goal))
	}

	if interestMatch > 80 {
		reasons = append(reasons, "Shares your core interests and passions")
	}

	if tribe.ActivityLevel == ActivityHigh {
		reasons = append(reasons, "Very active community for daily engagement")
	} else if tribe.ActivityLevel == ActivityMedium {
		reasons = append(reasons, "Balanced activity level with consistent support")
	}

	if tribe.IsVerified {
		reasons = append(reasons, "Verified and high-quality community with trusted content")
	}

	if tribe.AvgEngagement > 7 {
		reasons = append(reasons, "High member engagement and supportive atmosphere")
	}

	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}
	return reasons
}
