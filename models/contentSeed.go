package models

func SeedBlogPosts() []BlogPost {
	return []BlogPost{
		{ID: 1, Title: "10 Tips for Managing Diabetes Naturally", Excerpt: "Manage your diabetes effectively with these natural lifestyle changes that complement medical treatment.", Author: "Dr. Anand Kumar", Date: "April 12, 2023", Category: "Diabetes Care"},
		{ID: 2, Title: "Understanding Blood Pressure Readings", Excerpt: "Learn how to interpret your blood pressure readings and what they mean for your overall health.", Author: "Dr. Meera Sharma", Date: "March 25, 2023", Category: "Heart Health"},
		{ID: 3, Title: "The Importance of Regular Health Check-ups", Excerpt: "Regular health screenings can detect problems before they start or when chances for treatment are better.", Author: "Dr. Rajesh Patel", Date: "February 18, 2023", Category: "Preventive Care"},
		{ID: 4, Title: "Mental Health During the Pandemic", Excerpt: "Strategies to maintain your mental health and well-being during challenging times and health crises.", Author: "Dr. Priya Desai", Date: "January 30, 2023", Category: "Mental Health"},
		{ID: 5, Title: "Benefits of Telemedicine in Modern Healthcare", Excerpt: "Discover how virtual consultations are transforming the healthcare industry and improving patient care.", Author: "Dr. Karthik Venkat", Date: "January 15, 2023", Category: "Telemedicine"},
		{ID: 6, Title: "Essential Vaccinations for Every Age Group", Excerpt: "A comprehensive guide to vaccinations recommended for infants, children, teens, adults, and seniors.", Author: "Dr. Nisha Singh", Date: "December 12, 2022", Category: "Immunization"},
	}
}

func SeedBlogCategories() []string {
	return []string{
		"Diabetes Care",
		"Heart Health",
		"Preventive Care",
		"Mental Health",
		"Telemedicine",
		"Immunization",
		"Nutrition",
		"Fitness",
		"Women's Health",
		"Men's Health",
		"Pediatrics",
	}
}

func SeedRecentPosts() []string {
	return []string{
		"The Link Between Sleep and Heart Health",
		"Nutrition Tips for a Healthy Pregnancy",
		"Understanding Cholesterol Numbers",
		"Effective Ways to Boost Your Immunity",
		"Managing Stress in a Busy World",
	}
}

func SeedResources() []ResourceCategory {
	return []ResourceCategory{
		{
			Category: "Health Guidelines",
			Items: []Resource{
				{Title: "COVID-19 Prevention Guidelines", Description: "Latest guidelines for preventing COVID-19 infection and maintaining safety.", Type: "pdf", Link: "#"},
				{Title: "Diabetes Management Handbook", Description: "Comprehensive guide for managing diabetes, diet plans, and glucose monitoring.", Type: "pdf", Link: "#"},
				{Title: "Heart Health Recommendations", Description: "Recommendations for maintaining cardiovascular health and preventing heart disease.", Type: "pdf", Link: "#"},
			},
		},
		{
			Category: "Video Resources",
			Items: []Resource{
				{Title: "Understanding Blood Pressure", Description: "Educational video explaining blood pressure readings and their importance.", Type: "video", Link: "#"},
				{Title: "Home Exercises for Seniors", Description: "Safe and effective exercises for elderly individuals to maintain mobility.", Type: "video", Link: "#"},
				{Title: "Healthy Cooking Techniques", Description: "Demonstrations of healthy cooking methods to retain nutrients and reduce fat.", Type: "video", Link: "#"},
			},
		},
		{
			Category: "Mental Health Resources",
			Items: []Resource{
				{Title: "Stress Management Techniques", Description: "Effective techniques for managing stress and anxiety in daily life.", Type: "article", Link: "#"},
				{Title: "Sleep Hygiene Guide", Description: "Guidelines for improving sleep quality and establishing healthy sleep patterns.", Type: "pdf", Link: "#"},
				{Title: "Mindfulness Meditation Guide", Description: "Audio guides for practicing mindfulness meditation for mental well-being.", Type: "audio", Link: "#"},
			},
		},
	}
}

func SeedFAQs() []FAQ {
	return []FAQ{
		{
			Question: "How do I book a doctor appointment?",
			Answer:   "You can book a doctor appointment by navigating to the Doctor Consultation section, selecting a doctor, and clicking either 'Video Consultation' or 'Book Clinic Visit' button. Follow the prompts to select a date, time, and complete payment.",
		},
		{
			Question: "How can I find blood donors in an emergency?",
			Answer:   "Go to the Emergency Blood Seeking section, enter the required blood type and your location, and the system will show you available blood banks with the requested blood type. You can view their contact details and location on the map.",
		},
		{
			Question: "Are my medical records secure?",
			Answer:   "Yes, we take data security very seriously. All medical records are encrypted and stored securely. We comply with relevant data protection laws and only authorized healthcare providers can access your information with your consent.",
		},
		{
			Question: "How do I prepare for a video consultation?",
			Answer:   "Ensure you have a stable internet connection, a quiet environment, good lighting, and a working camera and microphone. Have your medical history, current medications, and any relevant medical reports ready. Log in to your account 5-10 minutes before your scheduled appointment.",
		},
		{
			Question: "Can I cancel or reschedule my appointment?",
			Answer:   "Yes, you can cancel or reschedule appointments through the 'My Appointments' section in your profile. Please note that cancellations made less than 24 hours before the appointment may incur a cancellation fee as per our policy.",
		},
		{
			Question: "How do I book lab tests?",
			Answer:   "Visit the Lab Centers section, browse through available centers or search for specific tests. Select a lab center, choose the required tests, select a convenient time slot, and complete the payment to book your test.",
		},
	}
}

// SeedChatSteps returns the assistant script keyed by step id.
func SeedChatSteps() map[string]ChatStep {
	steps := []ChatStep{
		{ID: ChatStartStep, Message: "Hello! I am your AI healthcare assistant. How can I help you today?", Trigger: "options"},
		{ID: "options", Options: []ChatOption{
			{Value: "symptoms", Label: "I have symptoms to discuss", Trigger: "askSymptoms"},
			{Value: "appointment", Label: "How do I book an appointment?", Trigger: "appointmentInfo"},
			{Value: "covid", Label: "COVID-19 information", Trigger: "covidInfo"},
			{Value: "general", Label: "General health question", Trigger: "askHealthQuestion"},
		}},
		{ID: "askSymptoms", Message: "Please describe your symptoms briefly:", Trigger: "userSymptoms"},
		{ID: "userSymptoms", User: true, Trigger: "symptomsResponse"},
		{ID: "symptomsResponse", Message: "Based on what you've described, it might be helpful to consult with a doctor. Would you like me to help you find a specialist?", Trigger: "findDoctor"},
		{ID: "findDoctor", Options: []ChatOption{
			{Value: "yes", Label: "Yes, find a doctor", Trigger: "doctorTypeOptions"},
			{Value: "no", Label: "No, thank you", Trigger: "endChat"},
		}},
		{ID: "doctorTypeOptions", Message: "What type of specialist would you like to consult?", Trigger: "specialistOptions"},
		{ID: "specialistOptions", Options: []ChatOption{
			{Value: "general", Label: "General Practitioner", Trigger: "doctorLinkGeneral"},
			{Value: "cardio", Label: "Cardiologist", Trigger: "doctorLinkCardio"},
			{Value: "neuro", Label: "Neurologist", Trigger: "doctorLinkNeuro"},
			{Value: "ent", Label: "ENT Specialist", Trigger: "doctorLinkEnt"},
			{Value: "other", Label: "Other Specialist", Trigger: "doctorLinkOther"},
		}},
		{ID: "doctorLinkGeneral", Message: "Great! You can find available general practitioners here:", Link: &ChatLink{Label: "View General Practitioners", Href: "/doctor-consultation?specialty=General%20Practitioner"}, Trigger: "askMoreHelp"},
		{ID: "doctorLinkCardio", Message: "Great! You can find available cardiologists here:", Link: &ChatLink{Label: "View Cardiologists", Href: "/doctor-consultation?specialty=Cardiologist"}, Trigger: "askMoreHelp"},
		{ID: "doctorLinkNeuro", Message: "Great! You can find available neurologists here:", Link: &ChatLink{Label: "View Neurologists", Href: "/doctor-consultation?specialty=Neurologist"}, Trigger: "askMoreHelp"},
		{ID: "doctorLinkEnt", Message: "Great! You can find available ENT specialists here:", Link: &ChatLink{Label: "View ENT Specialists", Href: "/doctor-consultation?specialty=ENT%20Specialist"}, Trigger: "askMoreHelp"},
		{ID: "doctorLinkOther", Message: "You can view all our specialists and filter by specialty here:", Link: &ChatLink{Label: "View All Specialists", Href: "/doctor-consultation"}, Trigger: "askMoreHelp"},
		{ID: "appointmentInfo", Message: "You can book an appointment in two ways: either through video consultation or by booking a clinic visit. Would you like me to show you how?", Trigger: "appointmentOptions"},
		{ID: "appointmentOptions", Options: []ChatOption{
			{Value: "video", Label: "Video Consultation", Trigger: "videoInfo"},
			{Value: "clinic", Label: "Clinic Visit", Trigger: "clinicInfo"},
			{Value: "no", Label: "No, thanks", Trigger: "askMoreHelp"},
		}},
		{
			ID:      "videoInfo",
			Message: "For video consultation:",
			Items: []string{
				"Browse and select a doctor",
				`Click on "Video Consultation"`,
				"Select a time slot",
				"Complete payment",
				"You'll receive a link to join the video call",
			},
			Link:    &ChatLink{Label: "Find a doctor now", Href: "/doctor-consultation"},
			Trigger: "askMoreHelp",
		},
		{
			ID:      "clinicInfo",
			Message: "For clinic visits:",
			Items: []string{
				"Browse and select a doctor",
				`Click on "Book Clinic Visit"`,
				"Select a date and time slot",
				"Complete payment",
				"You'll receive an appointment confirmation",
			},
			Link:    &ChatLink{Label: "Find a doctor now", Href: "/doctor-consultation"},
			Trigger: "askMoreHelp",
		},
		{
			ID:      "covidInfo",
			Message: "Here's important COVID-19 information:",
			Items: []string{
				"Wear masks in crowded places",
				"Maintain social distancing",
				"Wash hands frequently",
				"Get vaccinated and boosted",
				"Test if you have symptoms",
			},
			Note:    "Common symptoms include fever, cough, fatigue, loss of taste/smell, and difficulty breathing.",
			Trigger: "askMoreHelp",
		},
		{ID: "askHealthQuestion", Message: "What health topic would you like to know more about?", Trigger: "userHealthQuestion"},
		{ID: "userHealthQuestion", User: true, Trigger: "healthAnswer"},
		{ID: "healthAnswer", Message: "Thank you for your question. While I can provide general information, it's always best to consult with a healthcare professional for personalized advice. Would you like to speak with one of our doctors?", Trigger: "connectDoctorOptions"},
		{ID: "connectDoctorOptions", Options: []ChatOption{
			{Value: "yes", Label: "Yes, connect me with a doctor", Trigger: "connectDoctor"},
			{Value: "no", Label: "No, thanks", Trigger: "askMoreHelp"},
		}},
		{ID: "connectDoctor", Message: "You can browse our specialists and connect with them here:", Link: &ChatLink{Label: "Find a doctor", Href: "/doctor-consultation"}, Trigger: "askMoreHelp"},
		{ID: "askMoreHelp", Message: "Is there anything else I can help you with?", Trigger: "moreHelpOptions"},
		{ID: "moreHelpOptions", Options: []ChatOption{
			{Value: "yes", Label: "Yes, I have more questions", Trigger: "options"},
			{Value: "no", Label: "No, thank you", Trigger: "endChat"},
		}},
		{ID: "endChat", Message: "Thank you for chatting with me. If you have more questions later, feel free to come back!", End: true},
	}

	byID := make(map[string]ChatStep, len(steps))
	for _, s := range steps {
		byID[s.ID] = s
	}
	return byID
}
