package release

import (
	"context"
	"fmt"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/storage/memory"
)

// ListRemoteTags fetches the tag listing for the given repository URL
// using an in-memory go-git remote, rewrites calendar-version tag
// names with the placeos- prefix and returns them sorted descending by
// version. Each invocation lists the remote fresh; nothing is cached.
func ListRemoteTags(ctx context.Context, repoURL string) ([]string, error) {
	remote := git.NewRemote(memory.NewStorage(), &gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{repoURL},
	})

	refs, err := remote.ListContext(ctx, &git.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("listing remote tags for %s: %w", repoURL, err)
	}

	var tags []string
	for _, ref := range refs {
		name := ref.Name()
		if !name.IsTag() {
			continue
		}
		tags = append(tags, RewriteTag(name.Short()))
	}

	SortTags(tags)
	return tags, nil
}
