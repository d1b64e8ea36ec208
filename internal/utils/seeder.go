package utils

import (
	"time"

	"knowledgebase/internal/models"
)

// SeedArticles returns the fixed demonstration collection the service
// starts with: four published articles and one draft. Nothing survives a
// restart; the seed is reloaded every time.
func SeedArticles() []models.Article {
	return []models.Article{
		{
			ID:          "1",
			Title:       "Q3 Sales Strategy & Goals",
			Content:     "Our main goal for Q3 is to increase enterprise sales by 20%. Key strategies include focusing on the European market, offering bundled discounts, and leveraging our new CRM features. All sales teams should review the attached presentation for detailed targets.",
			Topic:       "Sales",
			Tags:        []string{"goals", "strategy", "q3", "enterprise"},
			CreatedAt:   time.Date(2023, 7, 15, 10, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2023, 7, 16, 11, 30, 0, 0, time.UTC),
			IsPublished: true,
			ViewCount:   152,
			Likes:       45,
		},
		{
			ID:          "2",
			Title:       "Onboarding New Remote Employees",
			Content:     "This guide outlines the complete process for onboarding remote employees. It covers IT setup, initial meetings, mentorship programs, and first-week objectives. HR managers are responsible for initiating the process at least one week before the start date.",
			Topic:       "HR Policies",
			Tags:        []string{"onboarding", "remote work", "hr"},
			CreatedAt:   time.Date(2023, 8, 1, 14, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2023, 8, 1, 14, 0, 0, 0, time.UTC),
			IsPublished: true,
			ViewCount:   210,
			Likes:       82,
		},
		{
			ID:          "3",
			Title:       "Troubleshooting API Connection Errors",
			Content:     "When encountering a 401 Unauthorized error, first verify the API key. For 503 Service Unavailable, check the status page for ongoing incidents. This document contains a comprehensive list of error codes and their solutions.",
			Topic:       "Technical Support",
			Tags:        []string{"api", "troubleshooting", "errors"},
			CreatedAt:   time.Date(2023, 8, 20, 9, 25, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2023, 8, 22, 16, 45, 0, 0, time.UTC),
			IsPublished: true,
			ViewCount:   345,
			Likes:       120,
		},
		{
			ID:          "4",
			Title:       "Alpha Project Retrospective (Draft)",
			Content:     "Initial thoughts on the Alpha Project. What went well: team collaboration, agile methodology. What could be improved: initial requirement gathering, stakeholder communication. This is a draft for internal discussion only.",
			Topic:       "Project Management",
			Tags:        []string{"retrospective", "alpha project"},
			CreatedAt:   time.Date(2023, 9, 5, 18, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2023, 9, 5, 18, 0, 0, 0, time.UTC),
			IsPublished: false,
			ViewCount:   15,
			Likes:       5,
		},
		{
			ID:          "5",
			Title:       "Using the New Expense Reporting System",
			Content:     "All employees must use the new \"ExpenseFlow\" system for submitting expenses starting October 1st. This guide provides a step-by-step walkthrough, from logging in to submitting a report for approval. Please complete the mandatory training by September 25th.",
			Topic:       "HR Policies",
			Tags:        []string{"expenses", "finance", "guide"},
			CreatedAt:   time.Date(2023, 9, 10, 11, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2023, 9, 10, 11, 0, 0, 0, time.UTC),
			IsPublished: true,
			ViewCount:   480,
			Likes:       98,
		},
	}
}
