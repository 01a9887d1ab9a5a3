package producers

// SongEdge records that a producer worked on one song alongside the
// listed collaborators (all other producer ids on that song).
type SongEdge struct {
	SongID        int64    `json:"song_id"`
	SongName      string   `json:"song_name"`
	Collaborators []string `json:"collaborators"`
}

// ProducerNode is one producer's accumulated view of the network.
type ProducerNode struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	URL   string     `json:"url"`
	Edges []SongEdge `json:"edges"`

	TotalSongs          int `json:"total_songs"`
	TotalCollaborations int `json:"total_collaborations"`
	UniqueCollaborators int `json:"unique_collaborators_count"`
}

// Network is a minimal, in-memory producer collaboration graph. Nodes
// is keyed by producer id; order remembers first insertion so that
// statistics with ties resolve the same way on every build.
type Network struct {
	Nodes map[string]*ProducerNode
	order []string
}

// Len returns the number of distinct producers in the network.
func (n *Network) Len() int {
	return len(n.Nodes)
}

// MostCollaborative returns the node with the highest unique
// collaborator count, or nil for an empty network. Ties go to the
// producer first encountered in the input records.
func (n *Network) MostCollaborative() *ProducerNode {
	var best *ProducerNode
	for _, id := range n.order {
		node := n.Nodes[id]
		if best == nil || node.UniqueCollaborators > best.UniqueCollaborators {
			best = node
		}
	}
	return best
}

// BuildNetwork folds song credit records into the collaboration graph.
// A song with fewer than 2 producers carries no collaboration and is
// invisible to the network. The first occurrence of a producer id pins
// that node's name/url; later occurrences never overwrite them.
func BuildNetwork(records []SongCredits) *Network {
	n := &Network{Nodes: make(map[string]*ProducerNode)}
	uniq := make(map[string]map[string]bool)

	for _, rec := range records {
		if len(rec.Producers) < 2 {
			continue
		}

		ids := make([]string, len(rec.Producers))
		for i, p := range rec.Producers {
			ids[i] = p.ID
		}

		for _, p := range rec.Producers {
			node, ok := n.Nodes[p.ID]
			if !ok {
				node = &ProducerNode{
					ID:    p.ID,
					Name:  p.Name,
					URL:   p.URL,
					Edges: make([]SongEdge, 0),
				}
				n.Nodes[p.ID] = node
				n.order = append(n.order, p.ID)
				uniq[p.ID] = make(map[string]bool)
			}

			collaborators := make([]string, 0, len(ids)-1)
			for _, id := range ids {
				if id != p.ID {
					collaborators = append(collaborators, id)
				}
			}

			node.Edges = append(node.Edges, SongEdge{
				SongID:        rec.SongID,
				SongName:      rec.SongName,
				Collaborators: collaborators,
			})
			node.TotalCollaborations += len(collaborators)
			for _, id := range collaborators {
				uniq[p.ID][id] = true
			}
		}
	}

	for id, node := range n.Nodes {
		node.TotalSongs = len(node.Edges)
		node.UniqueCollaborators = len(uniq[id])
	}

	return n
}

// CountCollaborativeSongs counts records that actually contribute to
// the network, i.e. songs with at least 2 credited producers.
func CountCollaborativeSongs(records []SongCredits) int {
	count := 0
	for _, rec := range records {
		if len(rec.Producers) >= 2 {
			count++
		}
	}
	return count
}
