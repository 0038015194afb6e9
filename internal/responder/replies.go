package responder

// Reply bodies per bucket. {{utterance}} marks where the raw user text goes.
var replies = map[Bucket]string{
	BucketFitness: `🏋️ Perfect! A fitness product has amazing campaign potential. Here's your complete campaign strategy:

**📱 PLATFORM-OPTIMIZED CAPTIONS:**

**Instagram Post:**
"💪 Transform your fitness journey in just 21 days! Our {{utterance}} users are seeing incredible results...

✨ Why it works:
→ Science-backed approach
→ Fits any schedule
→ Real results, real fast

Drop a 🔥 if you're ready to level up!

#FitnessTransformation #21DayChallenge #FitnessGoals #HealthyLifestyle #WorkoutMotivation"

**LinkedIn Version:**
"The fitness industry is evolving. Here's how {{utterance}} is helping professionals maintain peak performance while managing demanding careers.

Key insights from our community:
• 73% report increased energy levels
• 89% say it fits their busy schedule
• 94% would recommend to colleagues

What's your approach to maintaining fitness with a busy lifestyle?"

**📊 CAMPAIGN STRATEGY:**
- Hook: "The 21-day transformation that's changing everything"
- Angle: Busy professional's secret to staying fit
- Social Proof: Real user transformations
- CTA Progression: Soft → Medium → Hard sell over 7 days

**📅 7-DAY CONTENT CALENDAR:**
Day 1: Problem awareness post
Day 2: Behind-the-scenes story
Day 3: User transformation feature
Day 4: Educational carousel
Day 5: FOMO-driven limited offer
Day 6: Community testimonials
Day 7: Strong CTA + urgency

**🎯 HASHTAG STRATEGY:**
Primary: #FitnessGoals #WorkoutMotivation #HealthyLifestyle
Niche: #BusyProfessionals #21DayChallenge #FitnessJourney

Ready to launch? I can generate specific variations for any platform!`,

	BucketSoftware: `💻 Excellent choice! SaaS/App marketing is my specialty. Here's your comprehensive campaign kit:

**📱 MULTI-PLATFORM CONTENT:**

**TikTok Hook:**
"POV: You found the app that actually saves you 3 hours a day 😮‍💨

{{utterance}} users be like:
❌ Before: Chaos and stress
✅ After: Organized and productive

The secret? Smart automation that just works.

Tell me you need this 👇

#ProductivityHack #AppThatWorks #TechTok #ProductivityTips"

**Instagram Story Sequence:**
Slide 1: "The app everyone's talking about..."
Slide 2: Problem showcase (messy workflow)
Slide 3: Solution reveal (clean interface)
Slide 4: Results (happy user testimonial)
Slide 5: CTA with swipe-up

**🎯 CAMPAIGN ANGLES:**
1. Problem-Solution: "From chaos to clarity in minutes"
2. Social Proof: "Join 50K+ productive professionals"
3. FOMO: "The productivity secret everyone's using"
4. Lifestyle: "How top performers stay organized"

**📈 A/B TESTING VARIANTS:**
Version A: Feature-focused (what it does)
Version B: Benefit-focused (how it helps)
Version C: Emotion-focused (how it feels)

**🗓️ LAUNCH SEQUENCE:**
Week 1: Awareness (problem posts)
Week 2: Consideration (demo videos)
Week 3: Decision (testimonials + offers)
Week 4: Retention (user success stories)

Want me to dive deeper into any specific platform or strategy?`,

	BucketFood: `🍽️ Food marketing is incredibly visual and engaging! Here's your mouth-watering campaign strategy:

**📸 VISUAL CONTENT STRATEGY:**

**Instagram Reel Script:**
"Making the perfect [{{utterance}}] in 60 seconds ✨

*Quick cuts of ingredients*
*Satisfying cooking process*
*Money shot of final dish*

"When it tastes this good, you know you've found something special 😋

Save this recipe and tag someone who needs to try this!

#FoodieLife #RecipeOfTheDay #Delicious #FoodLover #HomeCooking"

**TikTok Version:**
"Food hack: This {{utterance}} recipe will change your life 🤯

*Trending audio overlay*
*Step-by-step quick cuts*
*Reaction shots*

"No way it's that easy" → *Shows result* → "Okay I'm convinced"

#FoodTok #RecipeHack #EasyRecipes #FoodHacks"

**🎭 CREATIVE ANGLES:**
- Behind-the-scenes kitchen magic
- Before/after transformations
- Customer reaction videos
- Chef's secret techniques
- Ingredient sourcing stories

**📊 ENGAGEMENT TACTICS:**
- "Rate this dish 1-10" polls
- Recipe sharing chains
- Cooking challenges
- User-generated content contests
- Interactive story quizzes

**📅 CONTENT MIX:**
30% Recipe content
25% Behind-the-scenes
20% User features
15% Educational/tips
10% Promotional

This approach typically sees 3x higher engagement than standard food posts! Ready to cook up some viral content?`,

	BucketFallback: `Thank you for sharing "{{utterance}}"! Let me create a comprehensive campaign strategy for you:

**🎯 CAMPAIGN OVERVIEW:**
Based on your product, I've identified key opportunities for viral content across multiple platforms.

**📱 PLATFORM-SPECIFIC CONTENT:**

**Instagram Strategy:**
"✨ Discover why thousands are obsessed with {{utterance}}

Here's what makes it different:
→ Solves a real problem
→ Easy to use daily
→ Results you can see

Which benefit resonates most with you? 👇

#Innovation #LifeHack #MustHave #ProductivityBoost"

**LinkedIn Approach:**
"The {{utterance}} trend: Why smart professionals are making the switch.

Key insights from early adopters:
• Increased efficiency by 40%
• Reduced daily friction
• Improved work-life balance

What tools are transforming your professional routine?"

**🚀 VIRAL HOOKS:**
- "The {{utterance}} that's changing everything"
- "Why everyone's switching to this instead"
- "The secret that [target audience] doesn't want you to know"

**📈 GROWTH STRATEGY:**
Week 1: Problem awareness content
Week 2: Solution introduction
Week 3: Social proof & testimonials
Week 4: Strong call-to-action campaign

**🎨 CREATIVE CONCEPTS:**
- Before/after comparisons
- Day-in-the-life content
- User success stories
- Behind-the-scenes looks
- Educational value-adds

Would you like me to dive deeper into any specific platform or create variations for different audience segments?`,
}
