package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("datealingo commands", func() {
	var (
		tempDir string
		dataDir string
		stdin   io.Reader
	)

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "datealingo-cli-*")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(os.RemoveAll, tempDir)
		dataDir = filepath.Join(tempDir, "data")
		stdin = strings.NewReader("")
	})

	run := func(args ...string) (string, error) {
		cmd := newRootCommand()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetIn(stdin)
		cmd.SetArgs(append([]string{
			"--data-dir", dataDir,
			"--config", filepath.Join(tempDir, "missing.yaml"),
		}, args...))
		err := cmd.ExecuteContext(context.Background())
		return out.String(), err
	}

	mustRun := func(args ...string) string {
		out, err := run(args...)
		Expect(err).NotTo(HaveOccurred(), out)
		return out
	}

	writeCSV := func(name, body string) string {
		path := filepath.Join(tempDir, name)
		Expect(os.MkdirAll(filepath.Dir(path), 0o755)).To(Succeed())
		Expect(os.WriteFile(path, []byte(body), 0o644)).To(Succeed())
		return path
	}

	It("asks for an import before studying", func() {
		_, err := run("show")
		Expect(errors.Is(err, errNoDeck)).To(BeTrue())
	})

	It("studies the sample deck", func() {
		Expect(mustRun("import", "--sample")).To(ContainSubstring("Imported 5 cards from sample deck"))

		out := mustRun("reshuffle", "--seed", "0")
		Expect(out).To(ContainSubstring("Card 1 of 5  ·  0/5 memorized"))
		Expect(out).To(ContainSubstring("馬"))
		Expect(out).To(ContainSubstring("Next: 鳥"))

		out = mustRun("known")
		Expect(out).To(ContainSubstring("Card 1 of 4  ·  1/5 memorized"))
		Expect(out).To(ContainSubstring("鳥"))
		Expect(out).To(ContainSubstring("Next: 魚"))

		out = mustRun("keep")
		Expect(out).To(ContainSubstring("Card 2 of 4"))
		Expect(out).To(ContainSubstring("Next: 猫"))

		out = mustRun("flip")
		Expect(out).To(ContainSubstring("さかな"))
		Expect(out).To(ContainSubstring("I ate fish"))

		Expect(mustRun("front", "en")).To(ContainSubstring("Front side: en"))
		Expect(mustRun("show")).To(ContainSubstring("fish"))

		out = mustRun("status")
		Expect(out).To(ContainSubstring("sample deck"))
		Expect(out).To(ContainSubstring("Memorized"))

		out = mustRun("list", "--all")
		Expect(out).To(ContainSubstring("horse"))
		Expect(out).To(ContainSubstring("✓"))
		Expect(mustRun("list")).NotTo(ContainSubstring("horse"))
	})

	It("brings memorized cards back", func() {
		mustRun("import", "--sample")
		mustRun("reshuffle", "--seed", "0")
		mustRun("known")

		out := mustRun("hide", "off")
		Expect(out).To(ContainSubstring("of 5"))

		out = mustRun("reset")
		Expect(out).To(ContainSubstring("0/5 memorized"))

		out = mustRun("restart")
		Expect(out).To(ContainSubstring("Card 1 of 5"))
		Expect(out).To(ContainSubstring("馬"))
	})

	It("reports an empty deck once every card is known", func() {
		mustRun("import", "--sample")
		var out string
		for i := 0; i < 5; i++ {
			out = mustRun("known")
		}
		Expect(out).To(ContainSubstring("No cards left in active deck"))
		Expect(out).To(ContainSubstring("5/5 memorized"))

		Expect(mustRun("known")).To(ContainSubstring("No cards left in active deck"))
	})

	It("rejects invalid CSV without saving anything", func() {
		path := writeCSV("bad.csv", "id,jp,hira,en,example\n1,水,みず,water,x\n")

		out, err := run("import", path)
		Expect(err).To(MatchError(ContainSubstring("import rejected")))
		Expect(out).To(ContainSubstring("Header problems"))
		Expect(out).To(ContainSubstring("Missing header: translation"))

		_, err = run("show")
		Expect(errors.Is(err, errNoDeck)).To(BeTrue())
	})

	It("prints row problems in their own table", func() {
		path := writeCSV("rows.csv", "id,jp,hira,en,example,translation,romaji,zh,cat\n1,水,,water,x,y,,,\n")

		out, err := run("check", path)
		Expect(err).To(HaveOccurred())
		Expect(out).To(ContainSubstring("Row problems"))
		Expect(out).To(ContainSubstring("hira is required"))
		Expect(out).NotTo(ContainSubstring("Header problems"))
	})

	It("refuses to replace a deck without --force", func() {
		mustRun("import", "--sample")
		mustRun("known")

		_, err := run("import", "--sample")
		Expect(err).To(MatchError(ContainSubstring("--force")))

		mustRun("import", "--sample", "--force")
		Expect(mustRun("show")).To(ContainSubstring("0/5 memorized"))
	})

	It("imports from stdin", func() {
		stdin = strings.NewReader("id,jp,hira,en,example,translation,romaji,zh,cat\n7,本,ほん,book,本を読む,I read a book,,,\n")

		Expect(mustRun("import", "-")).To(ContainSubstring("Imported 1 cards from stdin"))
		Expect(mustRun("show")).To(ContainSubstring("本"))
	})

	It("needs exactly one import source", func() {
		_, err := run("import")
		Expect(err).To(HaveOccurred())

		_, err = run("import", "--sample", "deck.csv")
		Expect(err).To(HaveOccurred())
	})

	It("validates the reshuffle seed", func() {
		mustRun("import", "--sample")
		_, err := run("reshuffle", "--seed", "2147483647")
		Expect(err).To(MatchError(ContainSubstring("seed must be between")))
	})

	It("checks a directory of decks", func() {
		writeCSV(filepath.Join("decks", "good.csv"), "id,jp,hira,en,example,translation,romaji,zh,cat\n1,水,みず,water,x,y,,,\n")
		writeCSV(filepath.Join("decks", "n5", "bad.csv"), "id\n1\n")

		out, err := run("check", "--dir", filepath.Join(tempDir, "decks"), "--root-deck", "JP")
		Expect(err).To(MatchError("1 of 2 files have problems"))
		Expect(out).To(ContainSubstring("JP::good"))
		Expect(out).To(ContainSubstring("JP::n5::bad"))
	})

	It("prints a generation prompt", func() {
		out := mustRun("prompt", "--count", "12", "--topic", "travel")
		Expect(out).To(ContainSubstring("12"))
		Expect(out).To(ContainSubstring("travel"))
	})

	It("clears stored data", func() {
		mustRun("import", "--sample")
		Expect(mustRun("clear")).To(ContainSubstring("Cleared all stored data"))

		_, err := run("status")
		Expect(errors.Is(err, errNoDeck)).To(BeTrue())
	})
})
