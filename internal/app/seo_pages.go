package app

import "github.com/sabbir073/Complete-Political-website-sub006/internal/domain/seo"

// DefaultStaticPages is the page table of the public site
func DefaultStaticPages() []seo.StaticPage {
	return []seo.StaticPage{
		{Path: "/", TitleEn: "Home", TitleBn: "হোম", ChangeFreq: "daily", Priority: 1.0},
		{Path: "/about", TitleEn: "About", TitleBn: "পরিচিতি", DescriptionEn: "Biography, vision and political journey.", DescriptionBn: "জীবনী, লক্ষ্য ও রাজনৈতিক পথচলা।", ChangeFreq: "monthly", Priority: 0.8},
		{Path: "/news", TitleEn: "News", TitleBn: "সংবাদ", DescriptionEn: "Latest news from the campaign.", DescriptionBn: "প্রচারণার সর্বশেষ সংবাদ।", ChangeFreq: "daily", Priority: 0.9},
		{Path: "/events", TitleEn: "Events", TitleBn: "অনুষ্ঠান", DescriptionEn: "Upcoming rallies, meetings and programmes.", DescriptionBn: "আসন্ন সভা ও কর্মসূচি।", ChangeFreq: "daily", Priority: 0.8},
		{Path: "/gallery", TitleEn: "Gallery", TitleBn: "গ্যালারি", ChangeFreq: "weekly", Priority: 0.6},
		{Path: "/promises", TitleEn: "Promises", TitleBn: "প্রতিশ্রুতি", DescriptionEn: "Commitments to the constituency and their progress.", DescriptionBn: "নির্বাচনী এলাকার প্রতি অঙ্গীকার ও অগ্রগতি।", ChangeFreq: "weekly", Priority: 0.7},
		{Path: "/achievements", TitleEn: "Achievements", TitleBn: "অর্জন", ChangeFreq: "weekly", Priority: 0.7},
		{Path: "/testimonials", TitleEn: "Testimonials", TitleBn: "মতামত", ChangeFreq: "weekly", Priority: 0.5},
		{Path: "/ama", TitleEn: "Ask Me Anything", TitleBn: "প্রশ্ন করুন", ChangeFreq: "daily", Priority: 0.6},
		{Path: "/complaints", TitleEn: "Complaints", TitleBn: "অভিযোগ", DescriptionEn: "Submit and track a complaint.", DescriptionBn: "অভিযোগ জমা দিন ও অবস্থা জানুন।", ChangeFreq: "monthly", Priority: 0.6},
		{Path: "/volunteer", TitleEn: "Volunteer", TitleBn: "স্বেচ্ছাসেবক", ChangeFreq: "monthly", Priority: 0.6},
		{Path: "/voter-search", TitleEn: "Find Your Voter Info", TitleBn: "ভোটার তথ্য খুঁজুন", ChangeFreq: "monthly", Priority: 0.7},
		{Path: "/emergency", TitleEn: "Emergency SOS", TitleBn: "জরুরি সহায়তা", ChangeFreq: "yearly", Priority: 0.4},
		{Path: "/store", TitleEn: "Store", TitleBn: "স্টোর", ChangeFreq: "weekly", Priority: 0.5},
		{Path: "/challenges", TitleEn: "Challenges", TitleBn: "চ্যালেঞ্জ", ChangeFreq: "weekly", Priority: 0.5},
		{Path: "/contact", TitleEn: "Contact", TitleBn: "যোগাযোগ", ChangeFreq: "yearly", Priority: 0.5},
	}
}
