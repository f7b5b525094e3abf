package sniff

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"code.cloudfoundry.org/lager"

	"github.com/leakhound/leakhound/gitclient"
	"github.com/leakhound/leakhound/mimetype"
	"github.com/leakhound/leakhound/sniff/matchers"
)

// NoFindingMarker is the line a clean check renders instead of silence, so
// downstream consumers can tell "checked, clean" from "not checked".
const NoFindingMarker = "[no findings]"

// Check identifiers, in battery order.
const (
	CheckEnvFiles              = "env-files"
	CheckPrivateKeyFiles       = "private-key-files"
	CheckCredentialKeywords    = "credential-keywords"
	CheckHardcodedIPs          = "hardcoded-ips"
	CheckCloudAccessKeys       = "cloud-access-keys"
	CheckConnectionStrings     = "connection-strings"
	CheckDeletedSensitiveFiles = "deleted-sensitive-files"
)

// Section is one check's outcome: its identifier and zero or more finding
// lines.
type Section struct {
	ID       string
	Findings []string
}

type lineSweep struct {
	id      string
	sniffer Sniffer
}

// Battery runs the fixed set of checks against one working copy.
type Battery struct {
	gitClient gitclient.Client
	sweeps    []lineSweep
}

func NewBattery(gitClient gitclient.Client) *Battery {
	exclusion := matchers.DefaultExclusion()

	return &Battery{
		gitClient: gitClient,
		sweeps: []lineSweep{
			{id: CheckCredentialKeywords, sniffer: NewSniffer(matchers.Credentials(), exclusion)},
			{id: CheckHardcodedIPs, sniffer: NewSniffer(matchers.IPv4(), exclusion)},
			{id: CheckCloudAccessKeys, sniffer: NewSniffer(matchers.CloudAccessKeys(), exclusion)},
			{id: CheckConnectionStrings, sniffer: NewSniffer(matchers.ConnectionStrings(), exclusion)},
		},
	}
}

// Run walks the working copy once for the file-shape checks and line sweeps,
// then consults version-control history for since-deleted sensitive files.
// Sections come back in battery order regardless of findings.
func (b *Battery) Run(ctx context.Context, logger lager.Logger, dir string) ([]Section, error) {
	logger = logger.Session("check-battery", lager.Data{"directory": dir})
	logger.Debug("starting")

	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}

	var envFiles, keyFiles []string
	sweepFindings := map[string][]string{}

	err := walkWorkingCopy(dir, func(rel string, info os.FileInfo) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		base := filepath.Base(rel)
		if isEnvFile(base) {
			envFiles = append(envFiles, rel)
		}
		if isPrivateKeyFile(base) {
			keyFiles = append(keyFiles, rel)
		}

		if skippableFile(base) {
			return nil
		}
		if !probablyText(base) && !looksLikeText(filepath.Join(dir, rel)) {
			return nil
		}

		return b.sweepFile(logger, dir, rel, sweepFindings)
	})
	if err != nil {
		return nil, err
	}

	deleted, err := b.deletedSensitiveFiles(ctx, logger, dir)
	if err != nil {
		return nil, err
	}

	sections := []Section{
		{ID: CheckEnvFiles, Findings: envFiles},
		{ID: CheckPrivateKeyFiles, Findings: keyFiles},
	}
	for _, sweep := range b.sweeps {
		sections = append(sections, Section{ID: sweep.id, Findings: sweepFindings[sweep.id]})
	}
	sections = append(sections, Section{ID: CheckDeletedSensitiveFiles, Findings: deleted})

	logger.Debug("done", lager.Data{"sections": len(sections)})
	return sections, nil
}

func (b *Battery) sweepFile(logger lager.Logger, dir, rel string, findings map[string][]string) error {
	for _, sweep := range b.sweeps {
		file, err := os.Open(filepath.Join(dir, rel))
		if err != nil {
			return err
		}

		handler := func(_ lager.Logger, violation Violation) error {
			line := fmt.Sprintf("%s:%d", violation.Line.Path, violation.Line.LineNumber)
			findings[sweep.id] = append(findings[sweep.id], line)
			return nil
		}

		err = sweep.sniffer.Sniff(logger, NewFileScanner(file, rel), handler)
		file.Close()
		if err != nil {
			return err
		}
	}

	return nil
}

func (b *Battery) deletedSensitiveFiles(ctx context.Context, logger lager.Logger, dir string) ([]string, error) {
	paths, err := b.gitClient.DeletedFiles(ctx, logger, dir)
	if err != nil {
		return nil, err
	}

	var findings []string
	for _, path := range paths {
		base := filepath.Base(path)
		if isEnvFile(base) || isPrivateKeyFile(base) {
			findings = append(findings, "deleted: "+path)
		}
	}

	return findings, nil
}

func looksLikeText(path string) bool {
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	defer file.Close()

	snippet := make([]byte, mimetype.SniffLen)
	n, err := file.Read(snippet)
	if err != nil && err != io.EOF {
		return false
	}

	return mimetype.IsText(snippet[:n])
}

func isEnvFile(basename string) bool {
	return basename == ".env" ||
		strings.HasPrefix(basename, ".env.") ||
		strings.HasSuffix(basename, ".env")
}

var privateKeyExtensions = map[string]struct{}{
	".jks":      {},
	".kdbx":     {},
	".key":      {},
	".keystore": {},
	".p12":      {},
	".pem":      {},
	".pfx":      {},
	".ppk":      {},
}

var privateKeyFilenames = map[string]struct{}{
	".htpasswd":  {},
	".netrc":     {},
	".pgpass":    {},
	"id_dsa":     {},
	"id_ecdsa":   {},
	"id_ed25519": {},
	"id_rsa":     {},
}

func isPrivateKeyFile(basename string) bool {
	if _, found := privateKeyExtensions[filepath.Ext(basename)]; found {
		return true
	}

	_, found := privateKeyFilenames[basename]
	return found
}

// RenderReport writes sections as headed blocks. Clean checks render the
// marker line so the report always accounts for every check.
func RenderReport(sections []Section) []byte {
	var builder strings.Builder

	for i, section := range sections {
		if i > 0 {
			builder.WriteByte('\n')
		}

		fmt.Fprintf(&builder, "== %s ==\n", section.ID)

		if len(section.Findings) == 0 {
			builder.WriteString(NoFindingMarker)
			builder.WriteByte('\n')
			continue
		}

		for _, finding := range section.Findings {
			builder.WriteString(finding)
			builder.WriteByte('\n')
		}
	}

	return []byte(builder.String())
}

// ParseReport is the inverse of RenderReport. Unheaded lines are dropped
// rather than misattributed.
func ParseReport(output []byte) []Section {
	var sections []Section

	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimRight(line, "\r")

		if strings.HasPrefix(line, "== ") && strings.HasSuffix(line, " ==") {
			id := strings.TrimSuffix(strings.TrimPrefix(line, "== "), " ==")
			sections = append(sections, Section{ID: id})
			continue
		}

		if line == "" || line == NoFindingMarker || len(sections) == 0 {
			continue
		}

		last := len(sections) - 1
		sections[last].Findings = append(sections[last].Findings, line)
	}

	return sections
}

// CountFlaggedSections reports how many sections carry at least one finding.
func CountFlaggedSections(sections []Section) int {
	count := 0
	for _, section := range sections {
		if len(section.Findings) > 0 {
			count++
		}
	}
	return count
}
