package prompts

// Hints is the fixed record of guidance text attached to a role/domain
// pair: topic hints steer question generation, criteria steer answer
// evaluation. All of it is advisory prompt text; nothing validates that
// the model obeys it.
type Hints struct {
	Topics   []string
	Criteria []string
}

// GeneralKey is the documented fallback key. Every role map carries a
// "general" entry used when the requested domain is unknown, and the
// catalog itself carries a "general" role used when the role is unknown.
const GeneralKey = "general"

// catalog maps role -> domain -> hints.
var catalog = map[string]map[string]Hints{
	"Software Engineer": {
		GeneralKey: {
			Topics: []string{
				"Data structures and algorithms",
				"System design and architecture",
				"Code optimization and performance",
				"Debugging and problem-solving",
				"Software development best practices",
				"Testing and quality assurance",
			},
			Criteria: []string{
				"Code quality and best practices",
				"Algorithm efficiency and optimization",
				"System design considerations",
				"Error handling and edge cases",
				"Scalability considerations",
			},
		},
		"Frontend Development": {
			Topics: []string{
				"Modern JavaScript frameworks (React, Vue, Angular)",
				"Web performance optimization",
				"Responsive design and CSS architecture",
				"Browser APIs and compatibility",
				"State management and data flow",
				"Web accessibility standards",
			},
		},
		"Backend Development": {
			Topics: []string{
				"API design and RESTful principles",
				"Database design and optimization",
				"Authentication and authorization",
				"Microservices architecture",
				"Message queues and async processing",
				"Security best practices",
			},
		},
		"Full Stack Development": {
			Topics: []string{
				"End-to-end application architecture",
				"Frontend and backend integration",
				"Database design and ORM usage",
				"API design and implementation",
				"Performance optimization",
				"Development workflows",
			},
		},
		"Mobile Development": {
			Topics: []string{
				"Native app development",
				"Cross-platform frameworks",
				"Mobile UI/UX best practices",
				"App performance optimization",
				"Mobile security",
				"App lifecycle management",
			},
		},
	},
	"Data Scientist": {
		GeneralKey: {
			Topics: []string{
				"Statistical analysis and hypothesis testing",
				"Machine learning algorithms and models",
				"Data preprocessing and feature engineering",
				"Model evaluation and validation",
				"Big data technologies and tools",
				"Experimental design and A/B testing",
			},
			Criteria: []string{
				"Statistical reasoning",
				"Model selection and justification",
				"Data preprocessing considerations",
				"Evaluation metrics understanding",
				"Business impact awareness",
			},
		},
		"Machine Learning": {
			Topics: []string{
				"ML algorithms and model selection",
				"Feature engineering",
				"Model evaluation metrics",
				"Hyperparameter tuning",
				"ML system design",
				"Model deployment",
			},
		},
		"Deep Learning": {
			Topics: []string{
				"Neural network architectures",
				"Deep learning frameworks",
				"Model optimization",
				"Transfer learning",
				"GPU acceleration",
				"Training large models",
			},
		},
		"Natural Language Processing": {
			Topics: []string{
				"Text preprocessing",
				"Language models",
				"Sentiment analysis",
				"Named entity recognition",
				"Machine translation",
				"Document classification",
			},
		},
	},
	"Product Manager": {
		GeneralKey: {
			Topics: []string{
				"Product metrics and analytics",
				"Feature prioritization and roadmap planning",
				"User research and market analysis",
				"Product development lifecycle",
				"Stakeholder management",
				"Technical feasibility assessment",
			},
			Criteria: []string{
				"Product thinking and strategy",
				"Data-driven decision making",
				"Stakeholder consideration",
				"Technical feasibility assessment",
				"Market understanding",
			},
		},
	},
	"DevOps Engineer": {
		GeneralKey: {
			Topics: []string{
				"CI/CD pipelines and automation",
				"Infrastructure as Code (IaC)",
				"Cloud platforms and services",
				"Container orchestration and microservices",
				"Monitoring and logging",
				"Security and compliance",
			},
			Criteria: []string{
				"Automation and efficiency",
				"Security considerations",
				"Scalability planning",
				"Monitoring and reliability",
				"Infrastructure design",
			},
		},
		"Cloud Infrastructure": {
			Topics: []string{
				"Cloud service architecture",
				"Infrastructure as Code",
				"Cost optimization",
				"Multi-cloud strategy",
				"Cloud security",
				"Disaster recovery",
			},
		},
		"CI/CD Pipeline": {
			Topics: []string{
				"Pipeline design and implementation",
				"Build automation",
				"Deployment strategies",
				"Testing integration",
				"Release management",
				"Pipeline security",
			},
		},
		"Site Reliability": {
			Topics: []string{
				"System reliability",
				"Monitoring and alerting",
				"Incident response",
				"Performance optimization",
				"Chaos engineering",
				"SLO/SLA management",
			},
		},
	},
	"UX Designer": {
		GeneralKey: {
			Topics: []string{
				"User research methods and tools",
				"Design systems and patterns",
				"Prototyping and wireframing",
				"Usability testing and metrics",
				"Accessibility standards",
				"Design tools and workflows",
			},
			Criteria: []string{
				"User-centered design thinking",
				"Research methodology",
				"Design system consistency",
				"Accessibility considerations",
				"Interaction design patterns",
			},
		},
		"Mobile Design": {
			Topics: []string{
				"Mobile UI patterns",
				"Gesture-based interactions",
				"Platform guidelines",
				"Responsive layouts",
				"Mobile usability",
				"Touch interfaces",
			},
		},
		"Product Design": {
			Topics: []string{
				"Product thinking",
				"User research",
				"Design systems",
				"Interaction patterns",
				"Usability testing",
				"Design documentation",
			},
		},
		"Design Systems": {
			Topics: []string{
				"Component libraries",
				"Design tokens",
				"Documentation",
				"Version control",
				"Team collaboration",
				"Implementation guidelines",
			},
		},
	},
	GeneralKey: {
		GeneralKey: {
			Topics: []string{
				"Core concepts and terminology of the role",
				"Problem-solving in realistic scenarios",
				"Collaboration and communication",
				"Industry best practices",
			},
			Criteria: []string{
				"Understanding of core principles",
				"Structured problem-solving",
				"Practical application",
			},
		},
	},
}

// Guidance is the resolved guidance for a role/domain pair.
type Guidance struct {
	RoleTopics   []string // role-level topic hints (general entry for the role)
	DomainTopics []string // domain-specific topic hints, empty when the domain is unknown
	Criteria     []string // role-specific evaluation criteria
}

// Lookup resolves guidance for a role and optional domain. An unknown
// role falls back to the catalog's "general" entry; an unknown or empty
// domain yields role-level guidance only.
func Lookup(role, domain string) Guidance {
	domains, ok := catalog[role]
	if !ok {
		domains = catalog[GeneralKey]
	}

	base := domains[GeneralKey]
	g := Guidance{
		RoleTopics: base.Topics,
		Criteria:   base.Criteria,
	}

	if domain != "" && domain != GeneralKey {
		if hints, ok := domains[domain]; ok {
			g.DomainTopics = hints.Topics
		}
	}

	return g
}

// Roles returns the roles with dedicated guidance entries, excluding the
// fallback key.
func Roles() []string {
	roles := make([]string, 0, len(catalog))
	for role := range catalog {
		if role != GeneralKey {
			roles = append(roles, role)
		}
	}
	return roles
}

// DomainsForRole returns the domains with dedicated guidance for a role,
// excluding the fallback key. Unknown roles yield nil.
func DomainsForRole(role string) []string {
	domains, ok := catalog[role]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(domains))
	for name := range domains {
		if name != GeneralKey {
			names = append(names, name)
		}
	}
	return names
}
