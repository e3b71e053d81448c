package catalog

func intPtr(v int) *int { return &v }

// Builtin returns the shipped SHRM Student Chapter Merit Award catalog.
func Builtin() *Catalog {
	return &Catalog{
		Levels: []AwardLevel{
			{Name: "Honorable Mention", MinActivities: 4, MaxActivities: intPtr(4), ClassName: "bg-green-100 text-green-800"},
			{Name: "Merit Award", MinActivities: 5, MaxActivities: intPtr(8), ClassName: "bg-blue-100 text-blue-800"},
			{Name: "Superior Merit Award", MinActivities: 9, MaxActivities: intPtr(12), ClassName: "bg-purple-100 text-purple-800"},
		},
		Sections: []AwardSection{
			{
				Title:          "Section 1: In Good Standing",
				Description:    "Basic requirements for a student chapter to remain in good standing. All items are required.",
				IsPrerequisite: true,
				Categories: []RequirementCategory{
					{
						Title: "Required Prerequisites",
						Requirements: []Requirement{
							{ID: "1.1", Title: "Minimum SHRM Members", Description: "Meet and maintain the minimum affiliation requirement of eight (8) national SHRM student members throughout the year."},
							{ID: "1.2", Title: "Annual SCIF Submission", Description: "Complete an annual Student Chapter Information Form (SCIF) and submit it to SHRM by June 1, to identify incoming chapter board leadership."},
							{ID: "1.3", Title: "Display SHRM \"AFFILIATE OF\" Logo", Description: "Correctly and consistently display the current SHRM \"AFFILIATE OF\" logo on website, chapter letterhead, banner, publications and products."},
							{ID: "1.4", Title: "Board & Educational Meetings", Description: "Hold a minimum of four (4) board meetings and a minimum of four (4) educational events that are organized and led by the student chapter."},
							{ID: "1.5", Title: "Membership Roster Updates", Description: "Submit any changes as they occur to our membership roster on the Student Chapter Roster Form, at least once during the merit award year."},
						},
					},
				},
			},
			{
				Title:          "Section 2A: Leadership & Operations",
				Description:    "Demonstrates student chapter leadership and sound operational practices. All items are required for award consideration.",
				IsPrerequisite: true,
				Categories: []RequirementCategory{
					{
						Title: "Required Prerequisites",
						Requirements: []Requirement{
							{ID: "2A.1", Title: "Board Operations Manual & Bylaws", Description: "Provide each board member with the SHRM Student Chapter Operations Manual and review the student chapter's bylaws during at least one board meeting."},
							{ID: "2A.2", Title: "Chapter Operating Plan", Description: "Create and implement a student chapter operating plan for the award year, addressing programs, membership, and other activities."},
							{ID: "2A.3", Title: "Website or Social Media Presence", Description: "Create or maintain a student chapter website or social media account and include a hyperlink to SHRM's homepage (www.shrm.org)."},
						},
					},
				},
			},
			{
				Title:          "Section 2B: Merit Award Activities",
				Description:    "Complete activities to earn award recognition. The number of completed activities determines the award level.",
				IsPrerequisite: false,
				Categories: []RequirementCategory{
					{
						Title:      "Chapter Programming & Career Development",
						ShortTitle: "Programming",
						Requirements: []Requirement{
							{ID: "2B.1", Title: "HRM Workshop/Seminar", Description: "Plan and implement a one-hour human resource management-related workshop, seminar or conference event."},
							{ID: "2B.2", Title: "Attend External Professional Event", Description: "Student chapter members will attend an external professional workshop, seminar or conference event on HRM and share information with the membership."},
							{ID: "2B.3", Title: "Membership Marketing Plan", Description: "Implement a membership marketing plan for the acquisition of SHRM Student members in our chapter."},
							{ID: "2B.4", Title: "Promote Internships/Mentorships", Description: "Members participate in internships, mentorships, company visits, job shadow opportunities; OR the chapter promotes job openings to all members."},
						},
					},
					{
						Title:      "Community-Based Activities",
						ShortTitle: "Community",
						Requirements: []Requirement{
							{ID: "2B.5", Title: "Publish Newsletter or Article", Description: "Publish a student chapter newsletter in print/electronic format OR submit an article about advancing the HR profession."},
							{ID: "2B.6", Title: "Promote HR Profession", Description: "Participate in a campus career fair to promote awareness of the HR profession to non-HR majors OR coordinate a career fair for high/middle school."},
							{ID: "2B.7", Title: "Fundraising Plan", Description: "Create and implement a fundraising plan for the student chapter, detailing the types of activities to be undertaken."},
							{ID: "2B.8", Title: "Community & Public Policy Project", Description: "Plan and implement a project that supports the community and promotes public-policy advocacy."},
						},
					},
					{
						Title:      "SHRM Affiliate Support",
						ShortTitle: "Affiliate Support",
						Requirements: []Requirement{
							{ID: "2B.9", Title: "Promote Student-to-Professional Program", Description: "Promote the SHRM Student-to-Professional Membership Program to graduating SHRM student members."},
							{ID: "2B.10", Title: "Educate on SHRM BASK", Description: "Educate student chapter members on the SHRM Body of Applied Skills and Knowledge (SHRM BASK) and promote its benefits."},
							{ID: "2B.11", Title: "Promote SHRM-CP Certification", Description: "Promote the benefits and value of the SHRM Certified Professional (SHRM-CP) certification and encourage eligible members to prepare and sit for the exam."},
							{ID: "2B.12", Title: "Support SHRM Foundation", Description: "Promote the SHRM Foundation's programs by contributing $25 from the chapter's funds and promoting its programs to members."},
						},
					},
				},
			},
		},
	}
}
