package catalog

import "github.com/geosick/pitchdeck/pkg/domain"

// builtinDeck is the GeoSick pitch deck.
func builtinDeck() []domain.Slide {
	return []domain.Slide{
		{
			ID:       1,
			Layout:   domain.LayoutTitle,
			Title:    "GeoSick",
			Subtitle: "AI Health Assistant",
			Body: []string{
				"N.Nikshith 2311cs020483",
				"N.Rishika 2311cs020466",
				"P.Likhitha Sai 2311cs020492",
				"PV. Sujitha Shree 2311cs020518",
				"P.Karthik Chowdary 2311cs020498",
			},
			Emphasize: true,
		},
		{
			ID:       2,
			Layout:   domain.LayoutContentLeft,
			Title:    "Introduction",
			Subtitle: "Bridging Environment & Wellness",
			Body: []string{
				"GeoSick is a next-generation AI ecosystem that correlates environmental data with personal health risks.",
				"Utilizing advanced Computer Vision to detect pathogen breeding grounds in real-time.",
				"Empowering users with predictive analytics to prevent disease before it strikes.",
			},
			Icon:    "activity",
			Graphic: domain.GraphicPulse,
		},
		{
			ID:       3,
			Layout:   domain.LayoutContentRight,
			Title:    "The Invisible Threat",
			Subtitle: "Why We Built GeoSick",
			Body: []string{
				"7 Million premature deaths annually due to environmental pollution (WHO).",
				"Vector-borne diseases (Dengue, Malaria) thrive in unmonitored stagnant zones.",
				"Patients struggle to interpret complex medical prescriptions, leading to medication errors.",
				"Lack of hyper-local, real-time disease surveillance for communities.",
			},
			Icon:    "alert-triangle",
			Graphic: domain.GraphicScan,
		},
		{
			ID:     4,
			Layout: domain.LayoutGrid,
			Title:  "System Architecture",
			Body: []string{
				"Environmental Vision AI",
				"NLP Prescription Decoder",
				"Affective Computing (Mood)",
				"Epidemiological Modeling",
				"Geospatial Risk Mapping",
			},
			Icon: "layout-grid",
		},
		{
			ID:     5,
			Layout: domain.LayoutProcess,
			Title:  "Operational Workflow",
			Body: []string{
				"Environmental Scanning & Data Ingestion",
				"Component-Based Pathogen Recognition",
				"Risk Stratification & Mitigation Protocols",
			},
		},
		{
			ID:     6,
			Layout: domain.LayoutGrid,
			Title:  "Core Capabilities",
			Body: []string{
				"Area Scan & Hazard Detection",
				"AI Symptom Checker",
				"Smart Script Reader",
				"Multi-lingual Application",
				"Voice Assistant & Page Nav",
				"3D Interactive Globe",
			},
			Icon: "star",
		},
		{
			ID:       7,
			Layout:   domain.LayoutLiveAnalysis,
			Title:    "AI Vision Engine",
			Subtitle: "Real-time Environmental Hazard Analysis",
			Body: []string{
				"Leveraging Google Gemini 2.5 Vision to identify risk factors like stagnant water, waste accumulation, and air quality indicators.",
			},
			Icon: "camera",
		},
		{
			ID:       8,
			Layout:   domain.LayoutContentLeft,
			Title:    "Prescription Simplifier",
			Subtitle: "Democratizing Medical Information",
			Body: []string{
				"Transforms unstructured medical jargon into structured, easy-to-read checklists.",
				"Extracts dosage, frequency, and dietary restrictions automatically.",
				"Reduces medication non-adherence rates through clear visual communication.",
			},
			Icon:    "file-text",
			Graphic: domain.GraphicPrescription,
		},
		{
			ID:       9,
			Layout:   domain.LayoutLiveChat,
			Title:    "Mental Wellness Companion",
			Subtitle: "24/7 Empathetic AI Support",
			Body: []string{
				"An intelligent conversational agent designed to track mood patterns, provide anxiety relief techniques, and offer non-judgmental support.",
			},
			Icon: "message-circle-heart",
		},
		{
			ID:     10,
			Layout: domain.LayoutCentered,
			Title:  "Global Risk Visualization",
			Body: []string{
				"Interactive 3D modeling of disease spread vectors.",
				"Spatiotemporal analysis of health trends across regions.",
				"Early warning system for potential epidemic outbreaks.",
			},
			Icon: "globe",
		},
		{
			ID:     11,
			Layout: domain.LayoutGrid,
			Title:  "Community Impact",
			Body: []string{
				"Hyper-local Disease Surveillance",
				"Health Equity & Accessibility",
				"Environmental Accountability",
				"24/7 Crisis Support",
			},
			Icon: "users",
		},
		{
			ID:       12,
			Layout:   domain.LayoutContentLeft,
			Title:    "Travel Shield & Pharma Connect",
			Subtitle: "Smart Protection on the Go",
			Body: []string{
				"Travel Safe Mode: Scan hotel rooms and foreign environments for local pathogen risks.",
				"Location-Based Precautions: Automated alerts for endemic diseases (e.g., Malaria zones).",
				"Pharma Brand Integration: Exclusive partnerships with top pharmacy brands for verified medication delivery anywhere.",
			},
			Icon:    "plane",
			Graphic: domain.GraphicTravel,
		},
		{
			ID:       13,
			Layout:   domain.LayoutContentRight,
			Title:    "Technology Stack",
			Subtitle: "Built on Modern Scalable Infrastructure",
			Body: []string{
				"AI Core: Google Gemini 2.5 Flash (Multimodal)",
				"Frontend: React 19, TypeScript, Tailwind CSS",
				"Visuals: Three.js / React Three Fiber (WebGL)",
				"State & Motion: Framer Motion, Zustand",
			},
			Icon:    "cpu",
			Graphic: domain.GraphicTechStack,
		},
		{
			ID:     14,
			Layout: domain.LayoutCentered,
			Title:  "Real-world Applications",
			Body: []string{
				"Urban Planning & Sanitation Monitoring",
				"Personalized Family Health Shields",
				"Travel Risk Assessment for Tourism",
				"Remote Tele-health Triage",
			},
			Icon: "map-pin",
		},
		{
			ID:     15,
			Layout: domain.LayoutContentLeft,
			Title:  "Competitive Edge",
			Body: []string{
				"First-mover advantage in combining Vision AI with Geospatial Health Tracking.",
				"Holistic approach: Integrating physical environmental factors with mental well-being.",
				"Superior UX: transforming complex medical data into accessible insights.",
			},
			Icon:    "trending-up",
			Graphic: domain.GraphicTechStack,
		},
		{
			ID:     16,
			Layout: domain.LayoutGrid,
			Title:  "Business Model",
			Body: []string{
				"Freemium Chatbot Access",
				"Premium Subscription Features",
				"Corporate Health Dashboard",
				"Hospital & NGO Partnerships",
			},
			Icon: "briefcase",
		},
		{
			ID:     17,
			Layout: domain.LayoutContentRight,
			Title:  "Future Roadmap",
			Body: []string{
				"IoT Wearable Data Synchronization",
				"Augmented Reality (AR) Hazard Overlays",
				"Blockchain for Patient Data Privacy",
				"Hyper-local Weather-Health Correlations",
			},
			Icon:    "zap",
			Graphic: domain.GraphicTechStack,
		},
		{
			ID:     18,
			Layout: domain.LayoutCentered,
			Title:  "Conclusion",
			Body: []string{
				"GeoSick is not just an app; it is a comprehensive health defense system.",
				"Empowering individuals with the intelligence to stay healthy in a changing world.",
			},
			Icon: "check-circle",
		},
		{
			ID:       19,
			Layout:   domain.LayoutClosing,
			Title:    "Thank You",
			Subtitle: "Shaping the Future of Health",
			Body: []string{
				"contact@geosick.ai",
				"www.geosick.ai",
			},
			Icon: "heart",
		},
	}
}
