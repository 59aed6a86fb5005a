package etl_test

import (
	"os"
	"path/filepath"

	"hragent/internal/etl"
	"hragent/internal/testhelpers"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Run", func() {
	var (
		dir             string
		rawEmployeesCSV string
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()

		raw, err := testhelpers.LoadFixture("employees_raw.csv")
		Expect(err).NotTo(HaveOccurred())
		rawEmployeesCSV = string(raw)
	})

	writeRaw := func(content string) string {
		path, err := testhelpers.WriteTempCSV(dir, "employees.csv", content)
		Expect(err).NotTo(HaveOccurred())
		return path
	}

	It("produces the canonical set", func() {
		inputPath := writeRaw(rawEmployeesCSV)
		outputPath := filepath.Join(dir, "cleaned.csv")

		employees, summary, err := etl.Run(inputPath, outputPath, etl.DefaultPipelineConfig())
		Expect(err).NotTo(HaveOccurred())

		Expect(summary.RowsIn).To(Equal(4))
		Expect(summary.DuplicatesDropped).To(Equal(1))
		Expect(summary.RowsOut).To(Equal(3))
		Expect(employees).To(HaveLen(3))

		alice := employees[0]
		Expect(alice.Email).To(Equal("alice@example.com"))
		Expect(*alice.Phone).To(Equal("(123) 456-7890"))
		Expect(*alice.Salary).To(Equal(int64(72500)))
		Expect(*alice.Department).To(Equal("Sales"))
		Expect(*alice.Region).To(Equal("US"))
		Expect(*alice.JoinDate).To(Equal("2020-01-12"))
		Expect(*alice.PerformanceScore).To(Equal("Exceeds"))

		bob := employees[1]
		Expect(bob.Phone).To(BeNil())
		Expect(*bob.Department).To(Equal("Engineering"))
		Expect(bob.Region).To(BeNil())
		Expect(*bob.JoinDate).To(Equal("2023-10-02"))

		carla := employees[2]
		Expect(carla.Salary).To(BeNil())
		Expect(carla.JoinDate).To(BeNil())
		Expect(*carla.Region).To(Equal("EU"))
	})

	It("is deterministic: two runs produce byte-identical output", func() {
		inputPath := writeRaw(rawEmployeesCSV)
		firstPath := filepath.Join(dir, "first.csv")
		secondPath := filepath.Join(dir, "second.csv")

		_, _, err := etl.Run(inputPath, firstPath, etl.DefaultPipelineConfig())
		Expect(err).NotTo(HaveOccurred())
		_, _, err = etl.Run(inputPath, secondPath, etl.DefaultPipelineConfig())
		Expect(err).NotTo(HaveOccurred())

		first, err := os.ReadFile(firstPath)
		Expect(err).NotTo(HaveOccurred())
		second, err := os.ReadFile(secondPath)
		Expect(err).NotTo(HaveOccurred())
		Expect(first).To(Equal(second))
	})

	It("fails with a SchemaError naming every missing column", func() {
		inputPath := writeRaw("Name,Email\nAlice,alice@example.com\n")

		_, _, err := etl.Run(inputPath, filepath.Join(dir, "cleaned.csv"), etl.DefaultPipelineConfig())
		Expect(err).To(HaveOccurred())

		var schemaErr *etl.SchemaError
		Expect(err).To(BeAssignableToTypeOf(schemaErr))
		Expect(err.(*etl.SchemaError).Missing).To(Equal([]string{"Phone", "Department_Region", "Salary"}))
	})

	It("fails with a SourceError when the input does not exist", func() {
		_, _, err := etl.Run(filepath.Join(dir, "no-such.csv"), filepath.Join(dir, "cleaned.csv"), etl.DefaultPipelineConfig())
		Expect(err).To(HaveOccurred())

		var sourceErr *etl.SourceError
		Expect(err).To(BeAssignableToTypeOf(sourceErr))
	})
})

var _ = Describe("LoadPipelineConfig", func() {
	It("returns defaults when the file is missing", func() {
		cfg, err := etl.LoadPipelineConfig(filepath.Join(GinkgoT().TempDir(), "none.yaml"))
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg).To(Equal(etl.DefaultPipelineConfig()))
	})

	It("overlays yaml values on the defaults", func() {
		dir := GinkgoT().TempDir()
		path := filepath.Join(dir, "pipeline.yaml")
		Expect(os.WriteFile(path, []byte("composite_delimiter: \"/\"\ndedupe_column: Contact\n"), 0o644)).To(Succeed())

		cfg, err := etl.LoadPipelineConfig(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.CompositeDelimiter).To(Equal("/"))
		Expect(cfg.DedupeColumn).To(Equal("Contact"))
		Expect(cfg.PhoneColumn).To(Equal("Phone")) // untouched default
	})
})
