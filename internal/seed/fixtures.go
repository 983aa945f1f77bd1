// Package seed holds the sample data the portal boots with. The store
// starts from these fixtures and grows in memory from there.
package seed

import (
	"time"

	"github.com/banoqabil/jobhub/pkg/kernel"
	"github.com/banoqabil/jobhub/portal/company"
	"github.com/banoqabil/jobhub/portal/job"
	"github.com/banoqabil/jobhub/portal/student"
)

// Categories is the filter sidebar's catalog.
func Categories() []kernel.JobCategory {
	return []kernel.JobCategory{
		"Software Development",
		"Marketing",
		"Design",
		"Data Science",
		"Customer Support",
		"Sales",
		"Finance",
	}
}

// Jobs returns the sample listings. Posted times are offsets from now so
// the relative labels read naturally on first load.
func Jobs(now time.Time) []job.Job {
	return []job.Job{
		{
			ID:           kernel.NewJobID("1"),
			Title:        "Frontend React Developer",
			Company:      "TechFlow Solutions",
			Location:     "Karachi, PK",
			Salary:       "Rs. 80,000 - 120,000",
			Type:         kernel.JobTypeFullTime,
			Category:     "Software Development",
			Description:  "We are looking for a passionate React developer to join our growing team. You will be responsible for building high-quality web applications.",
			Requirements: []string{"3+ years React experience", "Tailwind CSS", "TypeScript", "State Management"},
			PostedAt:     now.Add(-48 * time.Hour),
			Logo:         "https://picsum.photos/seed/tech1/100/100",
		},
		{
			ID:           kernel.NewJobID("2"),
			Title:        "Digital Marketing Intern",
			Company:      "Skyline Agency",
			Location:     "Lahore, PK",
			Salary:       "Rs. 20,000 - 30,000",
			Type:         kernel.JobTypeInternship,
			Category:     "Marketing",
			Description:  "Learn the ropes of digital marketing in a fast-paced environment. Great opportunity for Bano Qabil graduates.",
			Requirements: []string{"Social Media management", "Basic SEO", "Content Writing"},
			PostedAt:     now,
			Logo:         "https://picsum.photos/seed/sky/100/100",
		},
		{
			ID:           kernel.NewJobID("3"),
			Title:        "UI/UX Designer",
			Company:      "Creative Labs",
			Location:     "Remote",
			Salary:       "Rs. 100,000 - 150,000",
			Type:         kernel.JobTypeRemote,
			Category:     "Design",
			Description:  "Design beautiful interfaces for global clients. Proficiency in Figma is a must.",
			Requirements: []string{"Figma", "Adobe XD", "Prototyping", "User Research"},
			PostedAt:     now.Add(-5 * time.Hour),
			Logo:         "https://picsum.photos/seed/creative/100/100",
		},
		{
			ID:           kernel.NewJobID("4"),
			Title:        "Python Developer",
			Company:      "DataGen Systems",
			Location:     "Karachi, PK",
			Salary:       "Rs. 90,000 - 140,000",
			Type:         kernel.JobTypeFullTime,
			Category:     "Data Science",
			Description:  "Work on cutting-edge data pipelines and machine learning models.",
			Requirements: []string{"Python", "SQL", "Pandas", "API Development"},
			PostedAt:     now.Add(-24 * time.Hour),
			Logo:         "https://picsum.photos/seed/data/100/100",
		},
	}
}

// Companies returns the sample hiring partners. TechFlow Solutions
// matches the first listing's company name so applications to it
// resolve to a real recipient.
func Companies() []company.Company {
	return []company.Company{
		{
			ID:            kernel.NewCompanyID("c1"),
			Name:          "TechFlow Solutions",
			Industry:      "Software",
			Website:       "https://techflow.example.com",
			Logo:          "https://picsum.photos/seed/tech1/100/100",
			RequiredRoles: []string{"React Developer", "Backend Developer"},
			Description:   "Product studio building web applications for local and overseas clients.",
		},
		{
			ID:            kernel.NewCompanyID("c2"),
			Name:          "Skyline Agency",
			Industry:      "Marketing",
			Website:       "https://skyline.example.com",
			Logo:          "https://picsum.photos/seed/sky/100/100",
			RequiredRoles: []string{"Content Writer", "SEO Specialist"},
		},
	}
}

// Students returns the sample talent directory.
func Students() []student.Student {
	return []student.Student{
		{
			ID:     kernel.NewStudentID("s1"),
			Name:   "Ali Ahmed",
			Email:  kernel.Email("ali.ahmed@example.com"),
			Phone:  kernel.Phone("0300-1234567"),
			Campus: "Main Campus",
			Course: "Web Development",
			Batch:  "2024",
			Skills: []string{"Python", "JavaScript", "SQL"},
			CourseProjects: []student.CourseProject{
				{Title: "Inventory Tracker", Description: "CRUD app built during the final module.", Link: "https://github.com/aliahmed/inventory"},
			},
		},
		{
			ID:     kernel.NewStudentID("s2"),
			Name:   "Maria Khan",
			Email:  kernel.Email("maria.khan@example.com"),
			Phone:  kernel.Phone("0321-7654321"),
			Campus: "Main Campus",
			Course: "Graphic Design",
			Batch:  "2024",
			Skills: []string{"Figma", "Illustrator"},
		},
	}
}
