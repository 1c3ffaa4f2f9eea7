package content

// GraphQL documents for the WordPress (WPGraphQL) content backend.
const (
	searchDevicesQuery = `query SearchDevices($search: String!, $first: Int!) {
  posts(where: {search: $search}, first: $first) {
    nodes {
      id
      title
      slug
      featuredImage {
        node {
          sourceUrl
        }
      }
    }
  }
}`

	deviceBySlugQuery = `query DeviceBySlug($slug: ID!) {
  post(id: $slug, idType: SLUG) {
    id
    title
    slug
    content
    featuredImage {
      node {
        sourceUrl
      }
    }
  }
}`
)

// graphQLRequest is the JSON body of a GraphQL POST.
type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// graphQLError is one entry of a GraphQL response's errors array.
type graphQLError struct {
	Message string `json:"message"`
}

// postNode is the wire shape of a post returned by the API.
type postNode struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Slug          string `json:"slug"`
	Content       string `json:"content"`
	FeaturedImage *struct {
		Node struct {
			SourceURL string `json:"sourceUrl"`
		} `json:"node"`
	} `json:"featuredImage"`
}

// imageURL returns the featured image URL, or "" when the post has none.
func (p *postNode) imageURL() string {
	if p.FeaturedImage == nil {
		return ""
	}
	return p.FeaturedImage.Node.SourceURL
}

// searchData is the data payload of a SearchDevices response.
type searchData struct {
	Posts struct {
		Nodes []postNode `json:"nodes"`
	} `json:"posts"`
}

// detailData is the data payload of a DeviceBySlug response.
// Post is nil when the slug resolves to no record.
type detailData struct {
	Post *postNode `json:"post"`
}
