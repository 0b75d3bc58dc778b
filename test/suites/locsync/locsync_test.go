package test_test

import (
	"os"

	"github.com/sirupsen/logrus/hooks/test"

	"github.com/loopcontext/locsync"
	tree "github.com/loopcontext/locsync/test"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Synchronizer", func() {
	var project *tree.Tree
	var sync locsync.Synchronizer

	newSync := func(cfg locsync.Config) locsync.Synchronizer {
		logger, _ := test.NewNullLogger()
		cfg.Logger = logger
		s, err := locsync.New(cfg)
		Expect(err).NotTo(HaveOccurred())
		return s
	}

	BeforeEach(func() {
		var err error
		project, err = tree.NewTree("locsync-suite-*")
		Expect(err).NotTo(HaveOccurred())
		Expect(project.Write(map[string]string{
			"lib/home.dart":         "Text(translate('welcome_message')),\nTextButton(child: Text(translate('logout_btn'))),\n",
			"lib/settings.dart":     "Row(children: [Text(translate('a')), Text(translate('welcome_message'))])\n",
			"lib/notes.txt":         "translate('not_scanned')\n",
			"assets/i18n/en.json":   `{"existing": "value"}`,
			"assets/i18n/de.json":   `{"welcome_message": "Willkommen", "logout_btn": "Abmelden", "a": "A"}`,
			"assets/i18n/fr.yaml":   "welcome_message: Bienvenue\n",
			"assets/i18n/README.md": "not a target",
		})).To(Succeed())

		targets, err := locsync.DiscoverTargets(project.Path("assets/i18n"))
		Expect(err).NotTo(HaveOccurred())
		sync = newSync(locsync.Config{RootDir: project.Path("lib"), Targets: targets})
	})

	AfterEach(func() {
		Expect(project.Cleanup()).To(Succeed())
	})

	It("should extract every key from .dart files only", func() {
		keys, err := sync.Extract()
		Expect(err).NotTo(HaveOccurred())
		Expect(keys.Sorted()).To(Equal([]string{"a", "logout_btn", "welcome_message"}))
	})

	It("should add missing keys with the placeholder", func() {
		summary, err := sync.Sync()
		Expect(err).NotTo(HaveOccurred())
		Expect(summary.Files).To(HaveLen(3))
		Expect(summary.Added()).To(Equal(5))

		content, err := project.Read("assets/i18n/en.json")
		Expect(err).NotTo(HaveOccurred())
		Expect(content).To(Equal("{\n" +
			"    \"existing\": \"value\",\n" +
			"    \"a\": \"missing_translation\",\n" +
			"    \"logout_btn\": \"missing_translation\",\n" +
			"    \"welcome_message\": \"missing_translation\"\n" +
			"}"))

		content, err = project.Read("assets/i18n/fr.yaml")
		Expect(err).NotTo(HaveOccurred())
		Expect(content).To(Equal("welcome_message: Bienvenue\na: missing_translation\nlogout_btn: missing_translation\n"))
	})

	It("should leave complete targets untouched", func() {
		before, err := os.Stat(project.Path("assets/i18n/de.json"))
		Expect(err).NotTo(HaveOccurred())

		_, err = sync.Sync()
		Expect(err).NotTo(HaveOccurred())

		content, err := project.Read("assets/i18n/de.json")
		Expect(err).NotTo(HaveOccurred())
		Expect(content).To(Equal(`{"welcome_message": "Willkommen", "logout_btn": "Abmelden", "a": "A"}`))
		after, err := os.Stat(project.Path("assets/i18n/de.json"))
		Expect(err).NotTo(HaveOccurred())
		Expect(after.ModTime()).To(Equal(before.ModTime()))
	})

	It("should be idempotent", func() {
		_, err := sync.Sync()
		Expect(err).NotTo(HaveOccurred())
		first, err := project.Read("assets/i18n/en.json")
		Expect(err).NotTo(HaveOccurred())

		summary, err := sync.Sync()
		Expect(err).NotTo(HaveOccurred())
		Expect(summary.Changed()).To(BeEmpty())
		second, err := project.Read("assets/i18n/en.json")
		Expect(err).NotTo(HaveOccurred())
		Expect(second).To(Equal(first))
	})

	It("should report coverage after a sync", func() {
		_, err := sync.Sync()
		Expect(err).NotTo(HaveOccurred())
		keys, err := sync.Extract()
		Expect(err).NotTo(HaveOccurred())

		statuses, err := sync.Status(keys)
		Expect(err).NotTo(HaveOccurred())
		Expect(statuses).To(HaveLen(3))
		for _, st := range statuses {
			Expect(st.Missing).To(BeEmpty())
		}
		// de.json, en.json, fr.yaml in name order.
		Expect(statuses[0].Complete()).To(BeTrue())
		Expect(statuses[1].Language).To(Equal("en"))
		Expect(statuses[1].Untranslated).To(ConsistOf("a", "logout_btn", "welcome_message"))
		Expect(statuses[1].Stale).To(Equal([]string{"existing"}))
		Expect(statuses[2].Untranslated).To(ConsistOf("a", "logout_btn"))
	})

	It("should stop on a malformed target unless told to continue", func() {
		Expect(project.Write(map[string]string{"assets/i18n/de.json": `{"broken": `})).To(Succeed())

		_, err := sync.Sync()
		Expect(locsync.IsKind(err, locsync.KindParse)).To(BeTrue())

		targets, err := locsync.DiscoverTargets(project.Path("assets/i18n"))
		Expect(err).NotTo(HaveOccurred())
		lenient := newSync(locsync.Config{RootDir: project.Path("lib"), Targets: targets, ContinueOnError: true})
		summary, err := lenient.Sync()
		Expect(err).To(HaveOccurred())
		Expect(summary.Failed()).To(HaveLen(1))
		Expect(summary.Changed()).To(HaveLen(2))
	})
})
