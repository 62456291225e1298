// Package skills provides the controlled skill vocabulary and vocabulary-
// constrained skill extraction from résumé text.
package skills

// Vocabulary is the fixed set of recognized technical skills. Extraction only
// ever returns members of this list, so every entry is lowercase and
// whitespace-collapsed already. Short ambiguous tokens ("c", "r", "go") are
// deliberately absent because matching is substring-based; their common
// multi-character spellings are carried instead.
var Vocabulary = []string{
	// Languages
	"c++",
	"c#",
	"python",
	"java",
	"javascript",
	"typescript",
	"golang",
	"kotlin",
	"swift",
	"rust",
	"php",
	"ruby",
	"scala",
	"dart",
	"sql",
	"bash",
	"html",
	"css",

	// Frameworks and runtimes
	"fastapi",
	"django",
	"flask",
	"express",
	"node.js",
	"react",
	"next.js",
	"angular",
	"vue",
	"svelte",
	"spring boot",
	"flutter",
	"react native",
	"laravel",
	"rails",
	"tailwind",
	"bootstrap",
	"graphql",
	"grpc",

	// Data and ML
	"pandas",
	"numpy",
	"scikit-learn",
	"tensorflow",
	"pytorch",
	"keras",
	"opencv",
	"spark",
	"hadoop",
	"faiss",

	// Databases
	"mongodb",
	"postgresql",
	"mysql",
	"sqlite",
	"redis",
	"firebase",
	"elasticsearch",
	"dynamodb",
	"cassandra",
	"supabase",

	// Tools and platforms
	"git",
	"github",
	"gitlab",
	"bitbucket",
	"docker",
	"kubernetes",
	"jenkins",
	"terraform",
	"ansible",
	"aws",
	"azure",
	"gcp",
	"heroku",
	"vercel",
	"netlify",
	"linux",
	"nginx",
	"kafka",
	"rabbitmq",
	"postman",
	"vs code",
	"jira",
	"figma",
	"selenium",
	"pytest",
	"junit",
	"grafana",
	"prometheus",
}

// Categories groups a subset of the vocabulary into four disjoint families
// used by the ATS skill-diversity tier. The groups are intentionally small;
// diversity only asks how many families are represented at all.
var Categories = map[string][]string{
	"languages":  {"c", "c++", "c#", "python", "javascript", "sql", "kotlin"},
	"frameworks": {"fastapi", "react", "flutter", "express"},
	"databases":  {"mongodb", "firebase"},
	"tools":      {"git", "github", "postman", "vs code", "aws", "docker", "faiss"},
}
