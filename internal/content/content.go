// Package content holds the static specification document rendered by
// docview: the Bosen AI credit scoring and loan restructuring system
// specification. Sections are built once at load and never mutated.
package content

import "docview/internal/document"

// Title is the document's display title.
const Title = "Bosen AI Credit Scoring & Loan Restructuring System"

// Sections returns the document in reading order.
func Sections() []document.DocumentSection {
	return sections
}

var sections = []document.DocumentSection{
	{
		ID:    "goals",
		Title: "1. Background & Goals",
		Icon:  "target",
		Blocks: []document.ContentBlock{
			{
				Kind:  document.KindText,
				Title: "Project Vision",
				Text: &document.TextBlock{Body: "The Bosen AI credit scoring and loan restructuring system upgrades the digital core of BSSMC GROUP's loan advisory and restructuring services. Through a hybrid-intelligence architecture, the experience of senior consultants is distilled into scalable algorithmic logic."},
			},
			{
				Kind:  document.KindList,
				Title: "Core Objectives",
				List: &document.ListBlock{Items: []string{
					"Digitalization: move from consultants reading PDFs by hand to automated parsing with structured storage.",
					"Assessment accuracy: predict bank approval rates with an ML model over real Experian (CCRIS) and CTOS data, replacing gut-feel judgement.",
					"Consultant throughput: auto-generate deep analysis reports (PDF) and high-conversion WhatsApp copy so consultants focus on the relationship, not paperwork.",
					"Restructuring success rate: the simulation engine searches for repayment combinations that cut monthly commitments by 50-70%.",
				}},
			},
		},
	},
	{
		ID:    "architecture",
		Title: "2. Architecture Overview",
		Icon:  "layers",
		Blocks: []document.ContentBlock{
			{
				Kind: document.KindText,
				Text: &document.TextBlock{Body: "The system runs on a dual-core architecture: the BSSMC LLM layer handles unstructured understanding and generation, the BSSMC ML layer handles rigorous financial risk prediction, and a rule engine backstops hard compliance logic."},
			},
			{
				Kind:  document.KindArchitecture,
				Title: "Bosen AI System Architecture",
				Architecture: &document.ArchitectureBlock{Layers: []document.ArchitectureLayer{
					{Name: "Presentation Layer (Consultant & Client)", Items: []string{"Web Portal", "Mobile App", "WhatsApp Bot"}},
					{Name: "BSSMC LLM Layer (Unstructured)", Items: []string{"PDF Report Parser (OCR)", "Pattern Summarizer", "Comm Generator (Copywriting)"}, Highlight: true},
					{Name: "BSSMC ML Layer (Structured Logic)", Items: []string{"Risk Scoring Model (0-100)", "Approval Probability Predictor", "Financial Logic IP"}},
					{Name: "Deterministic Engines", Items: []string{"Rule Engine (Policy Filter)", "Repayment Simulation Engine (Math)"}},
					{Name: "Data Infrastructure", Items: []string{"Vector DB (Policies)", "PostgreSQL (Customer Profiles)", "Object Storage (PDFs)"}},
				}},
			},
		},
	},
	{
		ID:    "datastructure",
		Title: "3. ML Data Schema",
		Icon:  "database",
		Blocks: []document.ContentBlock{
			{
				Kind: document.KindText,
				Text: &document.TextBlock{Body: "The core data structure is the customer credit profile. The feature builder cleans raw parsed JSON into the feature vector the ML models consume."},
			},
			{
				Kind:  document.KindTable,
				Title: "Machine Learning Input Features",
				Table: &document.TableBlock{
					Headers: []string{"Feature Name", "Type", "Source", "Description", "Importance"},
					Rows: [][]string{
						{"ccris_12m_payment_vector", "Vector[12]", "Experian", "Rolling 12-month payment history (0=Clean, 1=Late)", "Critical"},
						{"dsr_consolidated", "Float", "Calculation", "Debt Service Ratio after simulated consolidation", "High"},
						{"unsecured_utilization", "Float", "Experian", "Ratio of credit card usage to limit", "High"},
						{"ctos_legal_flags", "Boolean", "CTOS", "Presence of bankruptcy/litigation/trade referee", "Critical"},
						{"income_stability_score", "Integer", "User Input", "Score based on employment type & document strength", "Medium"},
						{"bosen_internal_risk", "Integer", "ML Output", "Predicted risk score (0-100)", "Target"},
					},
				},
			},
			{
				Kind:  document.KindCode,
				Title: "Standardized Feature Object",
				Code: &document.CodeBlock{
					Language: "typescript",
					Source: `interface CreditFeatureVector {
  // Parsed from PDF
  bureauData: {
    ccris_arrears_max: number; // Max arrears in last 12 months
    total_outstanding_unsecured: number;
    total_outstanding_secured: number;
    special_attention_account: boolean; // SAA flag
    legal_action_status: 'CLEAR' | 'LITIGATION' | 'BANKRUPTCY';
  };

  // Financial computation
  financials: {
    monthly_net_income: number;
    current_commitment: number;
    new_simulated_commitment: number;
    dsr_current: number; // 0.0 - 1.0
    dsr_projected: number; // 0.0 - 1.0
  };

  // ML prediction target
  prediction: {
    bosen_score: number; // 0-100
    approval_probability: number; // 0.0 - 1.0
    suggested_strategy: 'DEBT_CONSOL' | 'RESTRUCTURE' | 'REJECT';
  }
}`,
				},
			},
		},
	},
	{
		ID:    "modules",
		Title: "4. Module Specification",
		Icon:  "cpu",
		Blocks: []document.ContentBlock{
			{
				Kind: document.KindText,
				Text: &document.TextBlock{Body: "This chapter defines the core processing modules, with emphasis on the report parsing layer's input/output contract and the feature builder's transformation logic."},
			},
			{
				Kind:  document.KindText,
				Title: "4.1 Report Parsing Layer",
				Text:  &document.TextBlock{Body: "The data entry point. Multimodal Gemini models read whole report pages, solving the failure mode of classical OCR on complex financial tables with merged or misaligned cells."},
			},
			{
				Kind:  document.KindList,
				Title: "Core Functions & Inputs",
				List: &document.ListBlock{Items: []string{
					"Input sources: user-uploaded CTOS PDF reports and Experian (IRISS + ISUPP) reports, including image-based scans.",
					"LLM parsing engine: the vision model reads the full page, detecting table boundaries and key fields.",
					"Output target: standardized JSON with unified field naming across sources (e.g. \"Total Outstanding\" vs \"Total Balance\").",
				}},
			},
			{
				Kind:  document.KindCode,
				Title: "Standardized Parsing Output",
				Code: &document.CodeBlock{
					Language: "json",
					Source: `{
  "meta": {
    "parsing_engine": "Gemini-1.5-Pro",
    "confidence_score": 0.98,
    "timestamp": "2023-10-27T10:00:00Z"
  },
  "ctos_parsed": {
    "summary": {
      "ctos_score": 720,
      "litigation_count": 0,
      "bankruptcy_status": "CLEAR"
    },
    "critical_flags": {
      "special_attention_account": false,
      "trade_referee_listings": 1
    }
  },
  "experian_parsed": {
    "risk_profile": {
      "i_score": 645,
      "risk_grade": "Fair"
    },
    "banking_info": {
      "total_outstanding_unsecured": 45000.00,
      "total_outstanding_secured": 350000.00,
      "ccris_facilities": [
        {
          "bank": "MBB",
          "type": "Credit Card",
          "limit": 20000,
          "outstanding": 18500,
          "payment_pattern_12m": "001000100000"
        }
      ]
    },
    "employment_history": [
      { "employer": "Tech Corp", "tenure_years": 2 },
      { "employer": "Old Agency", "tenure_years": 4 }
    ]
  }
}`,
				},
			},
			{
				Kind:  document.KindText,
				Title: "4.2 Feature Builder Layer",
				Text:  &document.TextBlock{Body: "Combines the parsing layer's raw JSON with consultant-entered profile data and converts both into the standardized numeric feature vector the ML models read."},
			},
			{
				Kind:  document.KindList,
				Title: "Core Functions",
				List: &document.ListBlock{Items: []string{
					"Pattern recognition: parse CCRIS strings like \"001020\" into max months-in-arrears and recent trend.",
					"Normalization: unify income fields across sources; clean free-form addresses into state/area codes.",
					"Feature engineering: derive DSR (debt service ratio), unsecured utilization, and related ratios.",
					"Formatting: emit arrays compatible with the prediction model's input pipeline.",
				}},
			},
			{
				Kind:  document.KindTable,
				Title: "Feature Categories",
				Table: &document.TableBlock{
					Headers: []string{"Category", "Key Features", "Source"},
					Rows: [][]string{
						{"Profile Info", "Age, State, Marital Status, Education", "User Input"},
						{"Income & Employment", "Net Income, Job Tenure (Years), Job Changes (Count)", "User Input / Docs"},
						{"Exposure", "Total Unsecured, Total Secured, No. of Facilities", "Experian/CTOS"},
						{"Repayment Behaviour", "Max MIA (12m), Avg Lag, Payment Trend Slope", "CCRIS Pattern"},
						{"Risk Flags", "Legal Status, Special Attention Account (SAA), Trade Referee", "CTOS"},
						{"Experian Risk", "i-Score, Risk Grade (1-10), Risk Bucket", "Experian"},
						{"Application Behaviour", "Recent Enquiries (3m/6m), New Facilities Approved", "Experian"},
						{"Assets", "Property Count, Car Value (Estimated)", "User Input"},
						{"ML Label", "Internal Risk Grade (Target Variable for Training)", "BSSMC History"},
					},
				},
			},
			{
				Kind:  document.KindList,
				Title: "4.3 Downstream Engines",
				List: &document.ListBlock{Items: []string{
					"Rule engine: hard admission filters (e.g. bankruptcy check).",
					"BSSMC ML engine: consumes the feature vector, emits approval probability.",
					"Repayment simulation engine: computes post-restructuring installment options.",
				}},
			},
		},
	},
	{
		ID:    "api",
		Title: "5. API Design",
		Icon:  "server",
		Blocks: []document.ContentBlock{
			{
				Kind:  document.KindText,
				Title: "Input Validation Strategy",
				Text:  &document.TextBlock{Body: "Every endpoint enforces strict input validation in middleware; requests not matching the predefined schema are rejected before they reach business logic."},
			},
			{
				Kind:  document.KindList,
				Title: "Validation Standard",
				List: &document.ListBlock{Items: []string{
					"Schema validation: strict types and formats via Zod (Node.js) or Pydantic (Python).",
					"File validation: upload type restricted to PDF and images, max 15MB.",
					"Sanitization: strip potential XSS or SQL injection characters from free-text fields.",
					"Error handling: validation failures return HTTP 400/422 with the offending fields named.",
				}},
			},
			{
				Kind:  document.KindAPI,
				Title: "Key System Endpoints",
				API: &document.APIBlock{Endpoints: []document.Endpoint{
					{
						Method:   "POST",
						Path:     "/api/v1/ingest/report",
						Summary:  "Upload & parse PDF report",
						Request:  "FormData (strict validation):\n- files: File[] (required, max 10MB, type: application/pdf, image/*)\n- type: Enum<\"EXPERIAN\" | \"CTOS\"> (required)",
						Response: "200 OK: { raw_json: {...} }\n400 Bad Request: {\n  \"code\": \"INVALID_FILE_TYPE\",\n  \"message\": \"Only PDF or Image files are allowed.\"\n}",
					},
					{
						Method:   "POST",
						Path:     "/api/v1/engine/evaluate",
						Summary:  "Get Bosen score & ML prediction",
						Request:  "JSON body (schema: EvaluationRequest):\n{\n  \"customer_financials\": {\n    \"net_income\": number (min: 1000),\n    \"commitments\": number (min: 0)\n  },\n  \"parsed_bureau_data\": object (required structure)\n}",
						Response: "200 OK: { bosen_score: 78, ... }\n422 Validation Error: {\n  \"loc\": [\"body\", \"customer_financials\", \"net_income\"],\n  \"msg\": \"Income must be greater than 1000\"\n}",
					},
					{
						Method:   "POST",
						Path:     "/api/v1/simulation/optimize",
						Summary:  "Run debt restructuring simulation",
						Request:  "JSON body:\n{\n  \"liabilities\": Array<LiabilityObj> (min_items: 1),\n  \"target_dsr\": number (range: 0.1 - 0.85)\n}",
						Response: "200 OK: { strategies: [...] }\n400 Bad Request: { \"message\": \"Target DSR cannot be lower than 10%.\" }",
					},
					{
						Method:   "POST",
						Path:     "/api/v1/llm/generate-comm",
						Summary:  "Generate report & WhatsApp message",
						Request:  "JSON body:\n{\n  \"analysis_id\": UUID (required, must exist in DB),\n  \"tone\": Enum<\"EMPATHETIC\" | \"PROFESSIONAL\">\n}",
						Response: "200 OK: { whatsapp_text: \"...\" }\n404 Not Found: { \"message\": \"Analysis ID provided does not exist.\" }",
					},
				}},
			},
		},
	},
	{
		ID:    "flow",
		Title: "6. System Flow",
		Icon:  "git-merge",
		Blocks: []document.ContentBlock{
			{
				Kind:  document.KindFlow,
				Title: "End-to-End Deal Processing Flow",
				Flow: &document.FlowBlock{Steps: []string{
					"Input: upload Experian/CTOS PDF reports",
					"Gemini/OpenAI: OCR parsing into structured JSON",
					"Feature builder: cleaning & rule pre-screening",
					"BSSMC ML engine: risk score generation",
					"Simulation engine: installment reduction options (A/B/C)",
					"LLM layer: consultant report & client copy",
					"Output: consultant app display & bank submission",
				}},
			},
		},
	},
	{
		ID:    "deployment",
		Title: "7. Deployment Plan",
		Icon:  "rocket",
		Blocks: []document.ContentBlock{
			{
				Kind: document.KindText,
				Text: &document.TextBlock{Body: "A phased rollout balancing cost, speed, and data privacy."},
			},
			{
				Kind:  document.KindList,
				Title: "Phase 1: Hybrid Cloud (MVP)",
				List: &document.ListBlock{Items: []string{
					"LLM: call GPT-4o or Gemini 1.5 Pro APIs over de-identified data for fast parsing and copy generation.",
					"ML model: scikit-learn/XGBoost models in private-cloud containers (Docker) so core scoring IP never leaves.",
					"Database: PostgreSQL (RDS) for structured business data.",
				}},
			},
			{
				Kind:  document.KindList,
				Title: "Phase 2: Self-Hosted Optimization (Scale)",
				List: &document.ListBlock{Items: []string{
					"LLM: fine-tune an open model (e.g. Llama 3 8B) and host it privately to cut API cost and raise the privacy bar.",
					"Training pipeline: automated MLOps retrains the scoring model quarterly from consultant-corrected approval outcomes.",
				}},
			},
		},
	},
	{
		ID:    "image-engine",
		Title: "8. Prototype: Image Tools",
		Icon:  "wand",
		Blocks: []document.ContentBlock{
			{
				Kind: document.KindText,
				Text: &document.TextBlock{Body: "This module demonstrates the image enhancement prototype used by the report parsing layer. Consultants use it to clean, enhance, or annotate scanned document images."},
			},
			{
				Kind:      document.KindImageTool,
				Title:     "Gemini 2.5 Flash Image - Interactive Editor",
				ImageTool: &document.ImageToolBlock{},
			},
			{
				Kind:  document.KindText,
				Title: "Usage Instructions",
				Text:  &document.TextBlock{Body: "Upload a report scan, enter an enhancement instruction (for example \"Increase contrast for better OCR\" or \"Highlight the Total Outstanding amount\"), and the system returns the processed image."},
			},
		},
	},
}
