package recommend

import "frictionlens/internal/model"

// templates maps each field to its static action plan. The lookup is
// configuration frozen at build time: the prioritizer ranks, the template
// explains.
var templates = map[model.Field]model.ActionTemplate{
	model.FieldMeaning: {
		Problem: "People do not see how their day-to-day work connects to something that matters.",
		Actions: []string{
			"Have the group's leader restate, in the team's own words, who is served by the work and what changes when it is done well.",
			"Trace one recent deliverable end to end with the team and mark where its impact became invisible.",
			"Cut or renegotiate one recurring task nobody can tie to an outcome.",
		},
		FollowUp: "Re-run the assessment after six weeks and check whether the meaning score moved before anything else.",
	},
	model.FieldSafety: {
		Problem: "People hold back concerns, questions and mistakes because speaking up feels risky.",
		Actions: []string{
			"Have the leader open the next three team meetings by naming one of their own recent mistakes and what it taught them.",
			"Move decision criticism from persons to artifacts: review documents and options, never the individual who wrote them.",
		},
		FollowUp: "Watch the safety spread: it should narrow before the mean rises.",
	},
	model.FieldCapability: {
		Problem: "People feel the demands of the work exceed the skills, tools or support available to them.",
		Actions: []string{
			"List the three tasks the group most often stalls on and identify whether each stall is skill, tooling or access.",
			"Pair the least and most confident people on the next stalled task, with the explicit goal of transfer rather than delivery.",
			"Book the one training or tooling purchase that removes the most frequent stall.",
		},
		FollowUp: "Check in one-on-one after a month: ask for a concrete task that became easier, not for a general impression.",
	},
	model.FieldHassle: {
		Problem: "Process friction from approvals, handoffs, rework and interruptions eats the energy the work itself deserves.",
		Actions: []string{
			"Have the team log every blocking wait of more than a day for two weeks, then remove or shorten the single most frequent one.",
			"Give the group standing authority to make one class of decision that currently requires sign-off.",
		},
		FollowUp: "Count the logged waits again after the change; the count matters more than how people feel about it.",
	},
}

// governance maps each field to the governance-framework area used purely to
// group recommendations in presentations. It plays no part in ranking.
var governance = map[model.Field]model.GovernanceArea{
	model.FieldMeaning:    model.GovernanceDirection,
	model.FieldSafety:     model.GovernanceCoordination,
	model.FieldCapability: model.GovernanceCoordination,
	model.FieldHassle:     model.GovernanceCommitment,
}

// TemplateFor returns the action template for a field.
func TemplateFor(field model.Field) model.ActionTemplate {
	return templates[field]
}

// GovernanceFor returns the governance area for a field.
func GovernanceFor(field model.Field) model.GovernanceArea {
	return governance[field]
}
