package etl_test

import (
	"hragent/internal/etl"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CheckSchema", func() {
	required := []string{"Email", "Phone", "Department_Region", "Salary"}

	It("passes when every required column is present", func() {
		headers := []string{"Name", "Email", "Phone", "Department_Region", "Salary", "Join_Date"}
		Expect(etl.CheckSchema(headers, required)).To(Succeed())
	})

	It("collects every missing column into one error", func() {
		headers := []string{"Name", "Email", "Join_Date"}

		err := etl.CheckSchema(headers, required)
		Expect(err).To(HaveOccurred())

		var schemaErr *etl.SchemaError
		Expect(err).To(BeAssignableToTypeOf(schemaErr))
		schemaErr = err.(*etl.SchemaError)
		Expect(schemaErr.Missing).To(Equal([]string{"Phone", "Department_Region", "Salary"}))
		Expect(schemaErr.Error()).To(ContainSubstring("Phone"))
		Expect(schemaErr.Error()).To(ContainSubstring("Department_Region"))
		Expect(schemaErr.Error()).To(ContainSubstring("Salary"))
	})
})

var _ = Describe("Deduplicate", func() {
	It("keeps the first occurrence for identities differing only in case and whitespace", func() {
		rows := []etl.RawRecord{
			{"Email": "Alice@Example.com", "Name": "Alice A"},
			{"Email": "  alice@example.com ", "Name": "Alice B"},
			{"Email": "bob@example.com", "Name": "Bob"},
		}

		kept, dropped := etl.Deduplicate(rows, "Email")
		Expect(dropped).To(Equal(1))
		Expect(kept).To(HaveLen(2))
		Expect(kept[0]["Name"]).To(Equal("Alice A"))
		Expect(kept[1]["Name"]).To(Equal("Bob"))
	})

	It("matches exactly on the normalized key, no fuzzing", func() {
		rows := []etl.RawRecord{
			{"Email": "alice@example.com"},
			{"Email": "alice+hr@example.com"},
		}

		kept, dropped := etl.Deduplicate(rows, "Email")
		Expect(dropped).To(Equal(0))
		Expect(kept).To(HaveLen(2))
	})
})

var _ = Describe("SplitComposite", func() {
	It("splits on the first delimiter only", func() {
		department, region := etl.SplitComposite("Sales-US", "-")
		Expect(department).To(Equal("Sales"))
		Expect(region).NotTo(BeNil())
		Expect(*region).To(Equal("US"))

		department, region = etl.SplitComposite("Sales - US", "-")
		Expect(department).To(Equal("Sales"))
		Expect(*region).To(Equal("US"))
	})

	It("leaves the region absent when the delimiter is missing", func() {
		department, region := etl.SplitComposite("Engineering", "-")
		Expect(department).To(Equal("Engineering"))
		Expect(region).To(BeNil())
	})
})
