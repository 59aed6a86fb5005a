package db_test

import (
	"context"
	"strings"

	"hragent/internal/db"
	"hragent/internal/models"
	"hragent/internal/testhelpers"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func employee(name, email string) models.Employee {
	return models.Employee{
		Name:       name,
		Email:      email,
		Phone:      strPtr("(123) 456-7890"),
		Salary:     int64Ptr(50000),
		Department: strPtr("Sales"),
		Region:     strPtr("US"),
		JoinDate:   strPtr("2020-01-12"),
	}
}

var _ = Describe("Store", func() {
	var (
		store *db.Store
		ctx   context.Context
	)

	BeforeEach(func() {
		store = db.NewStore(testhelpers.OpenTestDB())
		ctx = context.Background()
	})

	Describe("ReplaceEmployees", func() {
		It("swaps the table wholesale", func() {
			Expect(store.ReplaceEmployees(ctx, []models.Employee{
				employee("Alice", "alice@example.com"),
				employee("Bob", "bob@example.com"),
			})).To(Succeed())

			Expect(store.ReplaceEmployees(ctx, []models.Employee{
				employee("Carla", "carla@example.com"),
			})).To(Succeed())

			employees, err := store.Employees(ctx, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(employees).To(HaveLen(1))
			Expect(employees[0].Name).To(Equal("Carla"))
		})

		It("accepts an empty canonical set", func() {
			Expect(store.ReplaceEmployees(ctx, []models.Employee{employee("Alice", "alice@example.com")})).To(Succeed())
			Expect(store.ReplaceEmployees(ctx, nil)).To(Succeed())

			count, err := store.CountEmployees(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(BeZero())
		})

		It("does not touch the audit log", func() {
			Expect(store.AppendLog(ctx, &models.InteractionLog{
				CycleID:            "c-1",
				Question:           "q",
				Answer:             "a",
				VerificationStatus: "VERIFIED_CORRECT",
			})).To(Succeed())

			Expect(store.ReplaceEmployees(ctx, []models.Employee{employee("Alice", "alice@example.com")})).To(Succeed())

			logs, err := store.RecentLogs(ctx, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(logs).To(HaveLen(1))
		})
	})

	Describe("AppendLog", func() {
		It("assigns monotonically increasing IDs in append order", func() {
			first := &models.InteractionLog{CycleID: "c-1", Question: "q1", Answer: "a1", VerificationStatus: "VERIFIED_CORRECT"}
			second := &models.InteractionLog{CycleID: "c-2", Question: "q2", Answer: "a2", VerificationStatus: "VERIFICATION_ERROR"}

			Expect(store.AppendLog(ctx, first)).To(Succeed())
			Expect(store.AppendLog(ctx, second)).To(Succeed())

			Expect(first.ID).To(BeNumerically("<", second.ID))

			logs, err := store.RecentLogs(ctx, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(logs).To(HaveLen(2))
			Expect(logs[0].CycleID).To(Equal("c-2")) // newest first
		})
	})

	Describe("Snapshot", func() {
		It("serializes the canonical table as CSV", func() {
			Expect(store.ReplaceEmployees(ctx, []models.Employee{employee("Alice", "alice@example.com")})).To(Succeed())

			snapshot, err := store.Snapshot(ctx, 0)
			Expect(err).NotTo(HaveOccurred())

			lines := strings.Split(strings.TrimSpace(snapshot), "\n")
			Expect(lines).To(HaveLen(2))
			Expect(lines[0]).To(Equal("Name,Email,Phone,Salary,Department,Region,Join_Date,Performance_Score"))
			Expect(lines[1]).To(ContainSubstring("alice@example.com"))
			Expect(lines[1]).To(ContainSubstring("50000"))
		})

		It("truncates on a row boundary at the byte limit", func() {
			var employees []models.Employee
			for i := 0; i < 50; i++ {
				employees = append(employees, employee("Name", "user@example.com"))
			}
			Expect(store.ReplaceEmployees(ctx, employees)).To(Succeed())

			snapshot, err := store.Snapshot(ctx, 200)
			Expect(err).NotTo(HaveOccurred())

			lines := strings.Split(strings.TrimSpace(snapshot), "\n")
			Expect(len(lines)).To(BeNumerically("<", 51))
			// every emitted line is complete
			for _, line := range lines[1:] {
				Expect(strings.Count(line, ",")).To(Equal(7))
			}
		})
	})
})
