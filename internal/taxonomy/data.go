package taxonomy

import "github.com/northhealth/triage/internal/domain"

// Default returns the built-in taxonomy, emergency set, and advice catalog.
// Callers may supply their own Taxonomy instead; this is the curated default.
func Default() *Taxonomy {
	return &Taxonomy{
		Categories: []CategoryKeywords{
			{
				Name: domain.CategoryPhysicalSymptoms,
				Keywords: []string{
					"headache", "fever", "cough", "sore throat", "nausea", "vomiting", "diarrhea",
					"fatigue", "dizziness", "chest pain", "shortness of breath", "back pain",
					"joint pain", "muscle pain", "abdominal pain", "rash", "swelling",
					"bleeding", "bruising", "numbness", "tingling", "weakness", "pain", "hurt",
					"ache", "sick", "ill", "tired", "exhausted", "dizzy", "weak",
				},
			},
			{
				Name: domain.CategoryMentalHealth,
				Keywords: []string{
					"anxiety", "depression", "stress", "panic", "worry", "sadness", "hopelessness",
					"irritability", "mood swings", "insomnia", "sleep problems", "concentration",
					"memory", "suicidal", "self-harm", "eating disorder", "addiction", "overwhelmed",
					"anxious", "depressed", "stressed", "worried", "sad", "angry", "frustrated",
				},
			},
			{
				Name: domain.CategoryChronicConditions,
				Keywords: []string{
					"diabetes", "hypertension", "asthma", "arthritis", "heart disease",
					"cancer", "thyroid", "kidney disease", "liver disease", "autoimmune",
					"chronic", "condition", "medication", "treatment", "diagnosis",
				},
			},
			{
				Name: domain.CategoryLifestyle,
				Keywords: []string{
					"diet", "exercise", "weight", "smoking", "alcohol", "sleep", "workout",
					"nutrition", "fitness", "obesity", "underweight", "sedentary", "food",
					"eating", "drinking", "active", "inactive", "rest", "energy",
				},
			},
		},
		Emergency: []string{
			"chest pain", "heart attack", "stroke", "severe bleeding", "unconscious",
			"difficulty breathing", "severe head injury", "suicidal thoughts", "suicide",
			"severe allergic reaction", "broken bone", "severe burn", "emergency",
			"can't breathe", "choking", "overdose", "poisoning",
		},
		Advice: []CategoryAdvice{
			{
				Category: domain.CategoryPhysicalSymptoms,
				Symptoms: []SymptomAdvice{
					{
						Symptom: "headache",
						Advice: []string{
							"Try resting in a quiet, dark room to reduce stimulation",
							"Stay well-hydrated with water throughout the day",
							"Consider over-the-counter pain relief if appropriate",
							"Apply a cold or warm compress to your head or neck",
							"If headaches persist or worsen, consult a healthcare provider",
						},
					},
					{
						Symptom: "fever",
						Advice: []string{
							"Rest and drink plenty of fluids to stay hydrated",
							"Monitor your temperature regularly",
							"Consider fever-reducing medication if recommended by a healthcare provider",
							"Keep cool with light clothing and room temperature",
							"Seek medical attention if fever is very high or persists",
						},
					},
					{
						Symptom: "cough",
						Advice: []string{
							"Stay hydrated to help thin mucus secretions",
							"Use honey (for adults) to soothe throat irritation",
							"Consider a humidifier to add moisture to the air",
							"Avoid irritants like smoke and strong scents",
							"See a healthcare provider if cough persists or worsens",
						},
					},
					{
						Symptom: "fatigue",
						Advice: []string{
							"Ensure you're getting adequate sleep (7-9 hours nightly)",
							"Maintain regular sleep and wake times",
							"Eat nutritious, balanced meals regularly",
							"Stay hydrated throughout the day",
							"Consider if stress or other factors might be contributing",
						},
					},
					{
						Symptom: "pain",
						Advice: []string{
							"Rest the affected area if possible",
							"Apply ice for acute injuries or heat for muscle tension",
							"Consider gentle stretching or movement as tolerated",
							"Monitor pain levels and patterns",
							"Consult a healthcare provider for persistent or severe pain",
						},
					},
				},
			},
			{
				Category: domain.CategoryMentalHealth,
				Symptoms: []SymptomAdvice{
					{
						Symptom: "anxiety",
						Advice: []string{
							"Practice deep breathing exercises (4-7-8 technique)",
							"Try progressive muscle relaxation",
							"Limit caffeine intake, especially if sensitive",
							"Maintain regular sleep schedules",
							"Consider speaking with a mental health professional",
						},
					},
					{
						Symptom: "depression",
						Advice: []string{
							"Try to maintain daily routines, even simple ones",
							"Stay connected with supportive friends and family",
							"Engage in gentle physical activity like walking",
							"Spend time outdoors in natural light when possible",
							"Remember that depression is treatable - consider professional help",
						},
					},
					{
						Symptom: "stress",
						Advice: []string{
							"Practice mindfulness or meditation techniques",
							"Take regular breaks during demanding activities",
							"Engage in physical activity to release tension",
							"Set realistic boundaries and prioritize self-care",
							"Consider stress management counseling if needed",
						},
					},
				},
			},
			{
				Category: domain.CategoryLifestyle,
				Symptoms: []SymptomAdvice{
					{
						Symptom: "diet",
						Advice: []string{
							"Focus on whole foods: fruits, vegetables, lean proteins, whole grains",
							"Limit processed foods, added sugars, and excessive fats",
							"Stay hydrated with water as your primary beverage",
							"Eat regular, balanced meals and avoid skipping meals",
							"Consider consulting a registered dietitian for personalized guidance",
						},
					},
					{
						Symptom: "exercise",
						Advice: []string{
							"Start with activities you enjoy to build consistency",
							"Aim for at least 150 minutes of moderate activity weekly",
							"Include both cardiovascular and strength training exercises",
							"Begin gradually and progressively increase intensity",
							"Always warm up before and cool down after exercise",
						},
					},
					{
						Symptom: "sleep",
						Advice: []string{
							"Maintain consistent sleep and wake times",
							"Create a relaxing bedtime routine",
							"Keep your bedroom cool, dark, and quiet",
							"Avoid screens and stimulating activities before bed",
							"Limit caffeine and large meals close to bedtime",
						},
					},
				},
			},
		},
		Generic: []string{
			"Consider consulting a healthcare provider for personalized advice",
			"Maintain healthy lifestyle habits: balanced diet, regular exercise, adequate sleep",
			"Stay hydrated and listen to your body's needs",
			"Track your symptoms and note any changes",
		},
	}
}
