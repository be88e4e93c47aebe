package mcroot

import (
	"os"
	"sort"

	"github.com/Masterminds/semver/v3"
	"github.com/minepkg/mcassets/internals/merrors"
)

// Versions lists installed versions that have a client jar, newest first.
// Release versions are ordered by semver, everything else (snapshots, custom profiles)
// follows in lexical order
func Versions(root string) ([]string, error) {
	dir := VersionsDir(root)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, merrors.New(merrors.KindIO, "read", dir, err)
	}

	releases := make([]*semver.Version, 0, len(entries))
	releaseNames := make(map[*semver.Version]string)
	others := []string{}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if info, err := os.Stat(VersionArchive(root, name)); err != nil || info.IsDir() {
			continue
		}

		v, err := semver.NewVersion(name)
		if err != nil {
			others = append(others, name)
			continue
		}
		releases = append(releases, v)
		releaseNames[v] = name
	}

	sort.Sort(sort.Reverse(semver.Collection(releases)))
	sort.Strings(others)

	versions := make([]string, 0, len(releases)+len(others))
	for _, v := range releases {
		versions = append(versions, releaseNames[v])
	}
	return append(versions, others...), nil
}
