package services

import "github.com/dmitrijs2005/jobhunt/internal/client/models"

// descriptions are the canned job descriptions. Posted jobs without one get
// the first.
var descriptions = []string{
	"We're building the next generation of developer tools and are looking for a passionate professional to join our team. You'll work on challenging real-world problems, collaborate with brilliant minds across the globe, and ship features that impact millions of users every day. We care deeply about craftsmanship and move quickly without breaking things.",
	"This is a rare opportunity to shape our product from the ground up. You'll own your work end-to-end — from architecture decisions to deployment. We're a small but mighty team that values autonomy, creativity, and continuous learning. We offer fully remote work, equity, and a culture where great ideas win regardless of seniority.",
	"Join a team obsessed with making the product experience as great as possible. You'll be deep in the stack, contributing across frontend, services, and infrastructure. We value pragmatism, fast iteration, and mentoring. Great culture, excellent pay, and a product that people genuinely love using every day.",
	"We're seeking a seasoned professional to lead technical direction and mentor junior developers. You'll drive meaningful architectural decisions and help create a product used by enterprises globally. This is a high-impact role with real ownership — not just a cog in the machine. Competitive salary, generous equity, and strong remote flexibility.",
}

// seedJobs is the built-in catalog. It is rebuilt on every load and never
// written to storage.
func seedJobs() []models.Job {
	return []models.Job{
		{ID: 1, Company: "Stripe", Role: "Frontend", Position: "Senior React Engineer", Location: "Remote", Salary: "$120K–$150K", Experience: "4-5", Worktype: "Remote", Posted: "2 days ago", Featured: true, Desc: descriptions[0]},
		{ID: 2, Company: "Vercel", Role: "Backend", Position: "Node.js Backend Engineer", Location: "San Francisco", Salary: "$100K–$130K", Experience: "2-3", Worktype: "Hybrid", Posted: "1 day ago", Featured: false, Desc: descriptions[1]},
		{ID: 3, Company: "Linear", Role: "Full Stack", Position: "Full Stack Product Engineer", Location: "Remote", Salary: "$90K–$120K", Experience: "2-3", Worktype: "Remote", Posted: "3 hours ago", Featured: true, Desc: descriptions[2]},
		{ID: 4, Company: "Cloudflare", Role: "Devops", Position: "DevOps / Platform Engineer", Location: "London", Salary: "$80K–$110K", Experience: "4-5", Worktype: "Hybrid", Posted: "5 days ago", Featured: false, Desc: descriptions[3]},
		{ID: 5, Company: "HubSpot", Role: "Digital Marketing", Position: "Growth Marketing Manager", Location: "New York", Salary: "$60K–$90K", Experience: "0-1", Worktype: "Onsite", Posted: "1 week ago", Featured: false, Desc: descriptions[0]},
		{ID: 6, Company: "Figma", Role: "Frontend", Position: "UI / Design Systems Engineer", Location: "Remote", Salary: "$130K–$160K", Experience: "5+", Worktype: "Remote", Posted: "4 days ago", Featured: true, Desc: descriptions[1]},
		{ID: 7, Company: "PlanetScale", Role: "Backend", Position: "Database Infrastructure Engineer", Location: "Remote", Salary: "$110K–$140K", Experience: "4-5", Worktype: "Remote", Posted: "2 days ago", Featured: false, Desc: descriptions[2]},
		{ID: 8, Company: "Loom", Role: "Digital Marketing", Position: "SEO & Content Strategist", Location: "New York", Salary: "$50K–$70K", Experience: "0-1", Worktype: "Hybrid", Posted: "6 days ago", Featured: false, Desc: descriptions[3]},
		{ID: 9, Company: "Railway", Role: "Devops", Position: "Cloud Platform Engineer", Location: "Remote", Salary: "$100K–$130K", Experience: "2-3", Worktype: "Remote", Posted: "3 days ago", Featured: false, Desc: descriptions[0]},
		{ID: 10, Company: "Notion", Role: "Full Stack", Position: "Senior Product Engineer", Location: "San Francisco", Salary: "$115K–$145K", Experience: "4-5", Worktype: "Onsite", Posted: "1 day ago", Featured: true, Desc: descriptions[1]},
	}
}

var seedIDs = func() map[int64]struct{} {
	ids := make(map[int64]struct{})
	for _, j := range seedJobs() {
		ids[j.ID] = struct{}{}
	}
	return ids
}()

func isSeedID(id int64) bool {
	_, ok := seedIDs[id]
	return ok
}
