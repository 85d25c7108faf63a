package llm

// Prompt templates. Each instructs the model to answer with a single JSON
// object; the payload is appended after the template text.

const personaBuilderPrompt = `You are analyzing a scholarship description to extract its personality genome.
Output JSON ONLY with this exact structure:
{
    "persona_name": "string (e.g., 'The Innovation Leader')",
    "tone": "string (e.g., 'Ambitious and Visionary')",
    "weights": {
        "Academics": float 0-1,
        "Leadership": float 0-1,
        "Community": float 0-1,
        "Innovation": float 0-1,
        "FinancialNeed": float 0-1,
        "Research": float 0-1
    },
    "rationale": "string (1-2 sentences)"
}

Rules:
- Weights must sum to 1.0 (±0.01)
- Identify what the scholarship values most
- No markdown, only JSON

Scholarship Description:
`

const essayGeneratorPrompt = `Generate a 3-paragraph scholarship essay that aligns with the given persona.
Output JSON ONLY with this structure:
{
    "persona_name": "string",
    "tone_used": "string",
    "essay": [
        {
            "paragraph": "string (paragraph text)",
            "focus": "string (Academics/Leadership/Community/Innovation/FinancialNeed/Research)",
            "reason": "string (why this focus)",
            "alignment_score": float 0-1
        }
    ],
    "overall_alignment": float 0-1,
    "summary": "string"
}

Write naturally, personally, and match the scholarship's tone.
Each paragraph should be 80-100 words.

Input:
`

const evaluationAgentPrompt = `Compare two essays against a scholarship persona.
Output JSON ONLY with this structure:
{
    "persona_name": "string",
    "trait_alignment": {
        "Academics": float 0-1,
        "Leadership": float 0-1,
        "Community": float 0-1,
        "Innovation": float 0-1,
        "FinancialNeed": float 0-1,
        "Research": float 0-1
    },
    "baseline_alignment": {
        "Academics": float 0-1,
        "Leadership": float 0-1,
        "Community": float 0-1,
        "Innovation": float 0-1,
        "FinancialNeed": float 0-1,
        "Research": float 0-1
    },
    "alignment_gain": float,
    "tone_consistency_score": float 0-1,
    "summary": "string (why adaptive is better)",
    "recommendation": "string (start with action verb)"
}

Input:
`

const resumeExtractorPrompt = `You are analyzing a resume to extract structured information.
Extract all relevant information and return JSON ONLY with this exact structure:
{
    "name": "string",
    "email": "string or null",
    "phone": "string or null",
    "gpa": float or null,
    "activities": ["activity1", "activity2"],
    "achievements": ["achievement1", "achievement2"],
    "goals": "string describing career goals or objectives",
    "skills": ["skill1", "skill2", "skill3"],
    "education": [
        {
            "school": "string",
            "degree": "string",
            "field": "string",
            "graduation_year": "string or null",
            "gpa": float or null
        }
    ],
    "work_experience": [
        {
            "company": "string",
            "role": "string",
            "duration": "string",
            "description": "string",
            "key_achievements": ["achievement1", "achievement2"]
        }
    ],
    "certifications": ["cert1", "cert2"],
    "languages": ["English (Native)", "Spanish (Fluent)"],
    "awards": ["award1", "award2"],
    "extraction_confidence": float between 0.0 and 1.0
}

Important extraction rules:
- Extract actual data from the resume, don't make up information
- If a field is not found, use null or empty array
- For GPA, extract only if explicitly mentioned (0.0-4.0 scale)
- For activities, include clubs, organizations, volunteer work
- For achievements, include quantifiable accomplishments
- For skills, include both technical and soft skills
- Calculate extraction_confidence based on how much data was found (0.0=no data, 1.0=all fields filled)
- Goals can be extracted from objective, summary, or career goals sections

Return ONLY valid JSON, no markdown or commentary.

Resume Text:
`

var promptTemplates = map[PromptKind]string{
	KindPersonaBuilder:  personaBuilderPrompt,
	KindEssayGenerator:  essayGeneratorPrompt,
	KindEvaluationAgent: evaluationAgentPrompt,
	KindResumeExtractor: resumeExtractorPrompt,
}
