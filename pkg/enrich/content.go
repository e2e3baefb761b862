package enrich

// Canned content for the random-pick enrichers. Selection is uniform over each
// list via the registry's injectable RNG.

var facts = []string{
	"Honey never spoils. Archaeologists have found pots of honey in ancient Egyptian tombs that are over 3,000 years old and still perfectly good to eat.",
	"Octopuses have three hearts. Two pump blood to the gills, while the third pumps it to the rest of the body.",
	"A day on Venus is longer than a year on Venus. It takes 243 Earth days to rotate once on its axis, but only 225 Earth days to orbit the Sun.",
	"Bananas are berries, but strawberries aren't.",
	"A group of flamingos is called a 'flamboyance'.",
	"The shortest war in history was between Britain and Zanzibar on August 27, 1896. It lasted only 38 minutes.",
	"There are more possible iterations of a game of chess than there are atoms in the known universe.",
	"A 'jiffy' is an actual unit of time: 1/100th of a second.",
	"The Eiffel Tower can be 15 cm taller during the summer due to thermal expansion.",
	"Humans share 60% of their DNA with bananas.",
}

var quotes = []string{
	"The only way to do great work is to love what you do. - Steve Jobs",
	"Innovation distinguishes between a leader and a follower. - Steve Jobs",
	"The future belongs to those who believe in the beauty of their dreams. - Eleanor Roosevelt",
	"Strive not to be a success, but rather to be of value. - Albert Einstein",
	"The only thing we have to fear is fear itself. - Franklin D. Roosevelt",
	"Life is what happens to you while you're busy making other plans. - John Lennon",
	"The purpose of our lives is to be happy. - Dalai Lama",
	"Get busy living or get busy dying. - Stephen King",
	"You only live once, but if you do it right, once is enough. - Mae West",
	"The best revenge is massive success. - Frank Sinatra",
}

var jokes = []string{
	"Why don't scientists trust atoms? Because they make up everything!",
	"Why did the scarecrow win an award? Because he was outstanding in his field!",
	"What do you call a fake noodle? An impasta!",
	"Why did the bicycle fall over? Because it was two-tired!",
	"What do you call a bear with no teeth? A gummy bear!",
	"Why did the tomato turn red? Because it saw the salad dressing!",
	"What's orange and sounds like a parrot? A carrot!",
}

var greetings = []string{
	"Hello %s! How can I assist you today?",
	"Hi there %s! What can I do for you?",
	"Hey %s! Ready to help!",
	"Greetings %s! How may I be of service?",
	"Good to see you %s! What would you like to do?",
}

var farewells = []string{
	"Goodbye! Have a great day!",
	"See you later!",
	"Take care!",
	"Until next time!",
	"Bye! Stay safe!",
}

// fallbackPhrases cover the branch where classification failed outright and
// there is nothing meaningful to answer with.
var fallbackPhrases = []string{
	"I'm having trouble processing that right now. Could you try again?",
	"I didn't quite catch that. Can you rephrase?",
	"Let me try that again. Could you repeat your request?",
	"There seems to be a connection issue. Please try again shortly.",
}

const capabilitiesResponse = `I can help you with:
• Searching the web (Google, YouTube, Wikipedia)
• Opening applications and websites
• Setting reminders, alarms, and timers
• Answering questions and providing information
• Playing music and videos
• Getting weather updates
• Making calculations and conversions
• Telling jokes and facts
• Managing your schedule
• And much more!

Just tell me what you need!`

const helpResponse = `I'm here to help! You can ask me to:
• "Search for [topic]" - Search on Google
• "Play [song/video]" - Play on YouTube
• "Open [app/website]" - Open any app or site
• "What's the weather?" - Get weather info
• "Set a reminder for [time]" - Set reminders
• "Tell me a joke" - Hear a funny joke
• "What time is it?" - Get current time
• "How to [do something]" - Search for instructions

Or just tell me what you need help with!`
