package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"
)

// patternSet is a compiled list of glob patterns.
type patternSet []glob.Glob

func compilePatterns(patterns []string) (patternSet, error) {
	set := make(patternSet, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(filepath.ToSlash(p), '/')
		if err != nil {
			return nil, fmt.Errorf("invalid glob %q: %w", p, err)
		}
		set = append(set, g)
	}
	return set, nil
}

// match reports whether rel, a slash-separated relative path, or its base
// name matches any pattern. Directories also match with a trailing slash
// so that "vendor/**" excludes the vendor directory itself.
func (s patternSet) match(rel string, dir bool) bool {
	base := path.Base(rel)
	for _, g := range s {
		if g.Match(rel) || g.Match(base) || dir && g.Match(rel+"/") {
			return true
		}
	}
	return false
}

// discoverer carries the state of one discovery pass.
type discoverer struct {
	workDir    string
	extensions []string
	include    patternSet
	exclude    patternSet
	follow     bool
}

// Discover finds Markdown files matching opts. It returns sorted, absolute,
// deduplicated paths.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	d := &discoverer{
		workDir:    workDir,
		extensions: opts.effectiveExtensions(),
		follow:     opts.FollowSymlinks,
	}
	if d.include, err = compilePatterns(opts.Include); err != nil {
		return nil, err
	}
	if d.exclude, err = compilePatterns(opts.Exclude); err != nil {
		return nil, err
	}

	var files []string
	for _, input := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		abs := input
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(workDir, abs)
		}
		abs = filepath.Clean(abs)

		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", input, err)
		}

		if info.IsDir() {
			found, err := d.walk(ctx, abs)
			if err != nil {
				return nil, err
			}
			files = append(files, found...)
		} else if d.matchesFile(abs) {
			files = append(files, abs)
		}
	}

	slices.Sort(files)
	return slices.Compact(files), nil
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return abs, nil
}

func (d *discoverer) rel(p string) string {
	rel, err := filepath.Rel(d.workDir, p)
	if err != nil {
		rel = p
	}
	return filepath.ToSlash(rel)
}

// walk collects matching files under root. Hidden entries are skipped.
func (d *discoverer) walk(ctx context.Context, root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(p string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		if entry.IsDir() {
			if p != root && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			if p != root && d.exclude.match(d.rel(p), true) {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			target, err := os.Stat(p)
			if err != nil {
				return nil //nolint:nilerr // broken symlinks are skipped
			}
			if target.IsDir() {
				if !d.follow {
					return nil
				}
				resolved, err := filepath.EvalSymlinks(p)
				if err != nil {
					return nil //nolint:nilerr // unresolvable symlinks are skipped
				}
				sub, err := d.walk(ctx, resolved)
				if err != nil {
					return err
				}
				files = append(files, sub...)
				return nil
			}
		}

		if d.matchesFile(p) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}
	return files, nil
}

func (d *discoverer) matchesFile(p string) bool {
	ext := strings.ToLower(filepath.Ext(p))
	if !slices.ContainsFunc(d.extensions, func(e string) bool { return strings.ToLower(e) == ext }) {
		return false
	}

	rel := d.rel(p)
	if d.exclude.match(rel, false) {
		return false
	}
	return len(d.include) == 0 || d.include.match(rel, false)
}
