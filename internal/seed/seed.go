package seed

import (
	"context"
	"time"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/hirelogic/hirelogic/internal/models"
	mongorepo "github.com/hirelogic/hirelogic/internal/repositories/mongo"
	pgrepo "github.com/hirelogic/hirelogic/internal/repositories/postgres"
)

// Candidates returns the demo candidate set loaded on first boot.
func Candidates(now time.Time) []models.Candidate {
	mk := func(id, name, email, avatar, role string, stage models.Stage, resume string, skills []string, lastActivity time.Duration, docs []models.Document) models.Candidate {
		c := models.Candidate{
			ID:             id,
			Name:           name,
			Email:          email,
			Avatar:         avatar,
			Role:           role,
			Stage:          stage,
			Resume:         resume,
			Skills:         pq.StringArray(skills),
			LastActivityAt: now.Add(-lastActivity),
			CreatedAt:      now,
		}
		_ = c.SetDocuments(docs)
		return c
	}

	return []models.Candidate{
		mk("can-1", "Sarah Johnson", "sarah.j@example.com", "candidate-1",
			"Senior Frontend Developer", models.StageInterview,
			"Sarah Johnson is a results-driven Senior Frontend Developer with 8 years of experience in building and maintaining responsive and scalable web applications. Proficient in React, TypeScript, and modern JavaScript frameworks. Passionate about creating intuitive user interfaces and seamless user experiences. Proven ability to lead projects and mentor junior developers.",
			[]string{"React", "TypeScript", "JavaScript"},
			72*time.Hour,
			[]models.Document{
				{Name: models.DocAadhaarCard, Status: models.DocVerified},
				{Name: models.DocPANCard, Status: models.DocVerified},
				{Name: models.DocDrivingLicence, Status: models.DocNotSubmitted},
			}),
		mk("can-2", "Michael Chen", "michael.c@example.com", "candidate-2",
			"Product Manager", models.StageHired,
			"Michael Chen is a strategic Product Manager with a 6-year track record of launching successful SaaS products. Skilled in market research, user-centric design, and agile methodologies. Excels at collaborating with cross-functional teams to deliver products that meet user needs and business goals.",
			[]string{"Market Research", "Agile", "SaaS"},
			24*time.Hour,
			[]models.Document{
				{Name: models.DocAadhaarCard, Status: models.DocVerified},
				{Name: models.DocPANCard, Status: models.DocVerified},
				{Name: models.DocDrivingLicence, Status: models.DocVerified},
			}),
		mk("can-3", "Emily Rodriguez", "emily.r@example.com", "candidate-3",
			"UX/UI Designer", models.StageInterview,
			"Emily Rodriguez is a creative UX/UI Designer with a passion for crafting beautiful and functional digital experiences. With 4 years of experience, she is proficient in Figma, Sketch, and Adobe Creative Suite. Specializes in user research, wireframing, and prototyping to create intuitive and engaging designs.",
			[]string{"Figma", "Sketch", "Prototyping"},
			5*time.Hour,
			[]models.Document{
				{Name: models.DocAadhaarCard, Status: models.DocVerified},
				{Name: models.DocPANCard, Status: models.DocVerified},
				{Name: models.DocDrivingLicence, Status: models.DocPending},
			}),
		mk("can-4", "David Lee", "david.l@example.com", "candidate-4",
			"Backend Engineer", models.StageScreening,
			"David Lee is a dedicated Backend Engineer with 5 years of experience in designing and building robust server-side applications. Expertise in Node.js, Python, and database management with PostgreSQL and MongoDB. Experienced in developing RESTful APIs and microservices architecture.",
			[]string{"Node.js", "Python", "PostgreSQL", "MongoDB"},
			7*24*time.Hour,
			[]models.Document{
				{Name: models.DocAadhaarCard, Status: models.DocPending},
				{Name: models.DocPANCard, Status: models.DocNotSubmitted},
				{Name: models.DocDrivingLicence, Status: models.DocNotSubmitted},
			}),
		mk("can-5", "Jessica Williams", "jessica.w@example.com", "candidate-5",
			"Data Scientist", models.StageRejected,
			"Jessica Williams is an analytical Data Scientist with a knack for turning data into actionable insights. She has 3 years of experience in machine learning, statistical analysis, and data visualization using Python, R, and Tableau. Holds a Master's degree in Data Science.",
			[]string{"Python", "R", "Tableau", "Machine Learning"},
			14*24*time.Hour,
			nil),
		mk("can-6", "Chris Taylor", "chris.t@example.com", "candidate-6",
			"DevOps Engineer", models.StageScreening,
			"Chris Taylor is a skilled DevOps Engineer with 7 years of experience in automating and streamlining development pipelines. Proficient in CI/CD tools like Jenkins, containerization with Docker and Kubernetes, and cloud platforms like AWS. Strong focus on infrastructure as code and system reliability.",
			[]string{"Jenkins", "Docker", "Kubernetes", "AWS"},
			4*24*time.Hour,
			[]models.Document{
				{Name: models.DocAadhaarCard, Status: models.DocVerified},
				{Name: models.DocPANCard, Status: models.DocPending},
				{Name: models.DocDrivingLicence, Status: models.DocNotSubmitted},
			}),
	}
}

// Interviews returns the demo interview schedule matching Candidates.
func Interviews(now time.Time) []models.Interview {
	mk := func(id, candidateID, date, timeOfDay string, typ models.InterviewType, status models.InterviewStatus) models.Interview {
		return models.Interview{
			InterviewID: id,
			CandidateID: candidateID,
			Date:        date,
			Time:        timeOfDay,
			Type:        typ,
			Status:      status,
			CreatedAt:   now,
		}
	}

	return []models.Interview{
		mk("int-101", "can-1", "2024-08-05", "10:00 AM", models.InterviewAIScreening, models.InterviewCompleted),
		mk("int-102", "can-1", "2024-08-10", "02:00 PM", models.InterviewTechnical, models.InterviewScheduled),
		mk("int-201", "can-2", "2024-08-06", "11:00 AM", models.InterviewAIScreening, models.InterviewCompleted),
		mk("int-202", "can-2", "2024-08-08", "03:00 PM", models.InterviewTechnical, models.InterviewCompleted),
		mk("int-203", "can-2", "2024-08-10", "10:00 AM", models.InterviewHRRound, models.InterviewCompleted),
		mk("int-301", "can-3", "2024-08-07", "09:00 AM", models.InterviewAIScreening, models.InterviewCompleted),
		mk("int-302", "can-3", "2024-08-12", "11:30 AM", models.InterviewHRRound, models.InterviewScheduled),
		mk("int-401", "can-4", "2024-08-08", "03:00 PM", models.InterviewAIScreening, models.InterviewCompleted),
		mk("int-402", "can-4", "2024-08-12", "04:00 PM", models.InterviewTechnical, models.InterviewScheduled),
		mk("int-501", "can-5", "2024-08-09", "10:30 AM", models.InterviewAIScreening, models.InterviewCanceled),
		mk("int-601", "can-6", "2024-08-10", "01:00 PM", models.InterviewAIScreening, models.InterviewScheduled),
	}
}

// Run loads the demo fixtures when the candidate table is empty. Safe to call
// on every boot.
func Run(ctx context.Context, candidates pgrepo.CandidateRepository, interviews mongorepo.InterviewRepository, log *logrus.Logger) error {
	n, err := candidates.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	now := time.Now().UTC()
	for _, c := range Candidates(now) {
		c := c
		if err := candidates.Create(ctx, &c); err != nil {
			return err
		}
	}
	for _, iv := range Interviews(now) {
		iv := iv
		if err := interviews.Create(ctx, &iv); err != nil {
			// duplicate interview_id means a previous seed run got here
			log.WithError(err).WithField("interview_id", iv.InterviewID).Warn("seed interview insert failed")
		}
	}

	log.Info("seeded demo candidates and interviews")
	return nil
}
