package filesystem

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// MountEntry is a single record of a mount table, see fstab(5). Entries only
// live for the duration of a table scan and are not retained.
type MountEntry struct {
	Source    string
	Directory string
	Type      string
	Options   string
	Freq      int
	PassNo    int
}

// FilesystemName returns the source (e.g. a block device or a network share)
// of the filesystem mounted at mountPoint, as listed in the mount table.
//
// See [Handler.MountEntry] for the matching rules and failure modes.
func (f *Handler) FilesystemName(mountPoint string) (string, error) {
	entry, err := f.MountEntry(mountPoint)
	if err != nil {
		return "", err
	}

	return entry.Source, nil
}

// scanMountTable sequentially reads a mount table, returning the first entry
// whose directory equals mountPoint. The comparison is plain string equality,
// so for a directory listed twice (bind mounts, chroots) the first listing
// wins.
func scanMountTable(r io.Reader, mountPoint string) (MountEntry, bool, error) {
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		entry, ok := parseMountEntry(scanner.Text())
		if !ok {
			continue
		}

		if entry.Directory == mountPoint {
			return entry, true, nil
		}
	}

	if err := scanner.Err(); err != nil {
		return MountEntry{}, false, fmt.Errorf("(fs-mtab) failed to scan: %w", err)
	}

	return MountEntry{}, false, nil
}

// parseMountEntry parses a single mount table line the way getmntent(3)
// does. Comments, blank lines and lines without a directory are rejected.
func parseMountEntry(line string) (MountEntry, bool) {
	line = strings.TrimLeft(line, " \t")
	if line == "" || line[0] == '#' {
		return MountEntry{}, false
	}

	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\r'
	})
	if len(fields) < 2 { //nolint:mnd
		return MountEntry{}, false
	}

	entry := MountEntry{
		Source:    decodeMountField(fields[0]),
		Directory: decodeMountField(fields[1]),
	}

	if len(fields) > 2 { //nolint:mnd
		entry.Type = decodeMountField(fields[2])
	}
	if len(fields) > 3 { //nolint:mnd
		entry.Options = decodeMountField(fields[3])
	}
	if len(fields) > 4 { //nolint:mnd
		entry.Freq, _ = strconv.Atoi(fields[4])
	}
	if len(fields) > 5 { //nolint:mnd
		entry.PassNo, _ = strconv.Atoi(fields[5])
	}

	return entry, true
}

// decodeMountField reverses the octal escaping the kernel and libc apply to
// whitespace and backslashes in mount table fields.
func decodeMountField(field string) string {
	if !strings.Contains(field, `\`) {
		return field
	}

	var b strings.Builder
	b.Grow(len(field))

	for i := 0; i < len(field); i++ {
		if field[i] == '\\' {
			switch {
			case strings.HasPrefix(field[i:], `\040`):
				b.WriteByte(' ')
				i += 3

				continue
			case strings.HasPrefix(field[i:], `\011`):
				b.WriteByte('\t')
				i += 3

				continue
			case strings.HasPrefix(field[i:], `\012`):
				b.WriteByte('\n')
				i += 3

				continue
			case strings.HasPrefix(field[i:], `\134`):
				b.WriteByte('\\')
				i += 3

				continue
			case strings.HasPrefix(field[i:], `\\`):
				b.WriteByte('\\')
				i++

				continue
			}
		}
		b.WriteByte(field[i])
	}

	return b.String()
}
