package domain

// Seed lists. IDs are stable: saved completion state is matched by ID.

var buildPlanSeed = []ChecklistItem{
	{ID: 1, Group: "Setup & Planning", Description: "Create project folder structure (frontend/backend/docs/scripts)", Minutes: 25, Resource: "Project structure guide", ResourceURL: "https://www.freecodecamp.org/news/scalable-folder-structure-for-modern-web-apps/"},
	{ID: 2, Group: "Setup & Planning", Description: "Initialize Git repo & push to GitHub", Minutes: 25, Resource: "Git & GitHub basics", ResourceURL: "https://www.youtube.com/watch?v=RGOj5yH7evk"},
	{ID: 3, Group: "Setup & Planning", Description: "Setup .env files & Tailwind config", Minutes: 25, Resource: "TailwindCSS config", ResourceURL: "https://tailwindcss.com/docs/configuration"},
	{ID: 4, Group: "Backend Setup", Description: "Scaffold Express.js app with routes & test hello world", Minutes: 25, Resource: "Node+Express crash course", ResourceURL: "https://developer.mozilla.org/en-US/docs/Learn/Server-side/Express_Nodejs/Introduction"},
	{ID: 5, Group: "Backend Setup", Description: "Connect MongoDB Atlas & create first schema (User)", Minutes: 25, Resource: "MongoDB + Mongoose", ResourceURL: "https://mongoosejs.com/docs/index.html"},
	{ID: 6, Group: "Backend Setup", Description: "Build auth routes (register/login/logout)", Minutes: 25, Resource: "JWT auth tutorial", ResourceURL: "https://www.digitalocean.com/community/tutorials/nodejs-jwt-expressjs"},
	{ID: 7, Group: "Backend Setup", Description: "Build Epic Quest CRUD endpoints", Minutes: 25, Resource: "Mongoose & REST docs", ResourceURL: "https://mongoosejs.com/docs/guide.html"},
	{ID: 8, Group: "Backend Setup", Description: "Build Sub-Quest CRUD endpoints", Minutes: 25, Resource: "Mongoose & REST docs", ResourceURL: "https://mongoosejs.com/docs/guide.html"},
	{ID: 9, Group: "Backend Setup", Description: "Build AI endpoint that calls OpenAI API", Minutes: 25, Resource: "OpenAI API", ResourceURL: "https://platform.openai.com/docs/"},
	{ID: 10, Group: "Backend Setup", Description: "Test backend using Postman", Minutes: 25, Resource: "Postman basics", ResourceURL: "https://www.postman.com/api-platform/"},
	{ID: 11, Group: "Frontend Setup", Description: "Scaffold Next.js app with Tailwind & ShadCN UI", Minutes: 25, Resource: "Next.js tutorial", ResourceURL: "https://nextjs.org/learn"},
	{ID: 12, Group: "Frontend Setup", Description: "Create global layout & sidebar navigation", Minutes: 25, Resource: "ShadCN UI docs", ResourceURL: "https://ui.shadcn.com/"},
	{ID: 13, Group: "Frontend Setup", Description: "Build login/register pages connected to backend", Minutes: 25, Resource: "Clerk/Firebase/Custom", ResourceURL: "https://clerk.dev/docs"},
	{ID: 14, Group: "Frontend Setup", Description: "Build dashboard page with XP bar & stats", Minutes: 25, Resource: "Tailwind & Framer Motion", ResourceURL: "https://tailwindcss.com/docs/"},
	{ID: 15, Group: "Frontend Setup", Description: "Build Epic Quest List & Epic Details page", Minutes: 25, Resource: "Next.js dynamic routes", ResourceURL: "https://nextjs.org/docs/routing/dynamic-routes"},
	{ID: 16, Group: "Frontend Setup", Description: "Build Sub-Quest checklist UI", Minutes: 25, Resource: "Reusable components", ResourceURL: "https://react.dev/learn/your-first-component"},
	{ID: 17, Group: "Frontend Setup", Description: "Build AI Copilot chat UI", Minutes: 25, Resource: "OpenAI frontend integration", ResourceURL: "https://platform.openai.com/docs/"},
	{ID: 18, Group: "Frontend Setup", Description: "Add badges gallery & leaderboard UI", Minutes: 25, Resource: "ShadCN tables & cards", ResourceURL: "https://ui.shadcn.com/docs/components/table"},
	{ID: 19, Group: "Polish & Deploy", Description: "Add mobile responsiveness & animations", Minutes: 25, Resource: "Tailwind responsive design", ResourceURL: "https://tailwindcss.com/docs/responsive-design"},
	{ID: 20, Group: "Polish & Deploy", Description: "Seed DB with badges & test data", Minutes: 25, Resource: "Run seed.js", ResourceURL: "https://mongoosejs.com/docs/populate.html"},
	{ID: 21, Group: "Polish & Deploy", Description: "Deploy frontend on Vercel", Minutes: 25, Resource: "Vercel deploy", ResourceURL: "https://vercel.com/docs"},
	{ID: 22, Group: "Polish & Deploy", Description: "Deploy backend on Render", Minutes: 25, Resource: "Render deploy", ResourceURL: "https://render.com/docs"},
	{ID: 23, Group: "Polish & Deploy", Description: "Final QA test all flows", Minutes: 25, Resource: "QA checklist", ResourceURL: "https://www.softwaretestinghelp.com/qa-testing-checklist/"},
	{ID: 24, Group: "Polish & Deploy", Description: "Write README & basic docs", Minutes: 25, Resource: "Good README guide", ResourceURL: "https://www.makeareadme.com/"},
	{ID: 25, Group: "Polish & Deploy", Description: "Demo & feedback session", Minutes: 25, Resource: "Demo best practices", ResourceURL: "https://blog.ycombinator.com/how-to-build-a-great-product-demo/"},
}

var qaSeed = []ChecklistItem{
	{ID: 1, Group: "Authentication & Security", Description: "User registration works with valid email/password", Priority: ChecklistHigh},
	{ID: 2, Group: "Authentication & Security", Description: "User login works with correct credentials", Priority: ChecklistHigh},
	{ID: 3, Group: "Authentication & Security", Description: "Login fails with incorrect credentials", Priority: ChecklistHigh},
	{ID: 4, Group: "Authentication & Security", Description: "User logout works properly", Priority: ChecklistHigh},
	{ID: 5, Group: "Authentication & Security", Description: "Protected routes redirect to login when not authenticated", Priority: ChecklistHigh},
	{ID: 6, Group: "Authentication & Security", Description: "JWT tokens expire and refresh properly", Priority: ChecklistHigh},
	{ID: 7, Group: "Authentication & Security", Description: "Password validation enforces security requirements", Priority: ChecklistMedium},
	{ID: 8, Group: "Epic Quests", Description: "Create new Epic Quest with title and description", Priority: ChecklistHigh},
	{ID: 9, Group: "Epic Quests", Description: "View list of all Epic Quests", Priority: ChecklistHigh},
	{ID: 10, Group: "Epic Quests", Description: "Edit existing Epic Quest details", Priority: ChecklistHigh},
	{ID: 11, Group: "Epic Quests", Description: "Delete Epic Quest with confirmation", Priority: ChecklistHigh},
	{ID: 12, Group: "Epic Quests", Description: "Epic Quest status updates correctly (Active/Completed/Paused)", Priority: ChecklistHigh},
	{ID: 13, Group: "Epic Quests", Description: "Epic Quest progress calculation is accurate", Priority: ChecklistMedium},
	{ID: 14, Group: "Sub-Quests", Description: "Add Sub-Quest to Epic Quest", Priority: ChecklistHigh},
	{ID: 15, Group: "Sub-Quests", Description: "Mark Sub-Quest as complete/incomplete", Priority: ChecklistHigh},
	{ID: 16, Group: "Sub-Quests", Description: "Edit Sub-Quest details", Priority: ChecklistMedium},
	{ID: 17, Group: "Sub-Quests", Description: "Delete Sub-Quest with confirmation", Priority: ChecklistMedium},
	{ID: 18, Group: "Sub-Quests", Description: "Sub-Quest completion updates Epic Quest progress", Priority: ChecklistHigh},
	{ID: 19, Group: "Dashboard & Stats", Description: "XP bar displays current level and progress", Priority: ChecklistHigh},
	{ID: 20, Group: "Dashboard & Stats", Description: "Stats show correct counts (quests, completed, etc.)", Priority: ChecklistHigh},
	{ID: 21, Group: "Dashboard & Stats", Description: "Recent activity feed updates in real-time", Priority: ChecklistMedium},
	{ID: 22, Group: "Dashboard & Stats", Description: "Achievement badges display correctly", Priority: ChecklistMedium},
	{ID: 23, Group: "AI Copilot", Description: "AI chat interface loads and responds", Priority: ChecklistHigh},
	{ID: 24, Group: "AI Copilot", Description: "AI provides relevant quest suggestions", Priority: ChecklistMedium},
	{ID: 25, Group: "AI Copilot", Description: "AI handles error cases gracefully", Priority: ChecklistMedium},
	{ID: 26, Group: "AI Copilot", Description: "Chat history persists during session", Priority: ChecklistLow},
	{ID: 27, Group: "UI/UX & Responsiveness", Description: "Mobile layout works on phones (320px-768px)", Priority: ChecklistHigh},
	{ID: 28, Group: "UI/UX & Responsiveness", Description: "Tablet layout works (768px-1024px)", Priority: ChecklistHigh},
	{ID: 29, Group: "UI/UX & Responsiveness", Description: "Desktop layout works (1024px+)", Priority: ChecklistHigh},
	{ID: 30, Group: "UI/UX & Responsiveness", Description: "Navigation menu works on all screen sizes", Priority: ChecklistHigh},
	{ID: 31, Group: "UI/UX & Responsiveness", Description: "Forms are usable on mobile devices", Priority: ChecklistHigh},
	{ID: 32, Group: "UI/UX & Responsiveness", Description: "Loading states display during API calls", Priority: ChecklistMedium},
	{ID: 33, Group: "UI/UX & Responsiveness", Description: "Error messages are clear and helpful", Priority: ChecklistMedium},
	{ID: 34, Group: "Performance & Browser", Description: "App loads in under 3 seconds on 3G", Priority: ChecklistMedium},
	{ID: 35, Group: "Performance & Browser", Description: "Works in Chrome (latest version)", Priority: ChecklistHigh},
	{ID: 36, Group: "Performance & Browser", Description: "Works in Firefox (latest version)", Priority: ChecklistHigh},
	{ID: 37, Group: "Performance & Browser", Description: "Works in Safari (latest version)", Priority: ChecklistHigh},
	{ID: 38, Group: "Performance & Browser", Description: "Works in Edge (latest version)", Priority: ChecklistMedium},
	{ID: 39, Group: "Performance & Browser", Description: "No console errors in production", Priority: ChecklistHigh},
	{ID: 40, Group: "Data & API", Description: "Data persists after browser refresh", Priority: ChecklistHigh},
	{ID: 41, Group: "Data & API", Description: "API handles network failures gracefully", Priority: ChecklistHigh},
	{ID: 42, Group: "Data & API", Description: "Offline functionality works (if implemented)", Priority: ChecklistLow},
	{ID: 43, Group: "Data & API", Description: "Database operations are atomic and consistent", Priority: ChecklistHigh},
	{ID: 44, Group: "Final Checks", Description: "All links work and lead to correct pages", Priority: ChecklistHigh},
	{ID: 45, Group: "Final Checks", Description: "Favicon and meta tags are properly set", Priority: ChecklistLow},
	{ID: 46, Group: "Final Checks", Description: "App works with JavaScript disabled (graceful degradation)", Priority: ChecklistLow},
	{ID: 47, Group: "Final Checks", Description: "Accessibility: keyboard navigation works", Priority: ChecklistMedium},
	{ID: 48, Group: "Final Checks", Description: "Accessibility: screen reader compatibility", Priority: ChecklistMedium},
}

var tourismSeed = []ChecklistItem{
	{ID: 1, Group: "Planning & Setup", Description: "Define functional requirements & roles (Tourist, Guide, Admin)", Minutes: 25, Resource: "Functional spec tips", ResourceURL: "https://www.justinmind.com/blog/how-to-write-a-functional-specification/"},
	{ID: 2, Group: "Planning & Setup", Description: "Design high-level architecture (frontend, backend, DB)", Minutes: 25, Resource: "System design 101", ResourceURL: "https://roadmap.sh/system-design"},
	{ID: 3, Group: "Planning & Setup", Description: "Create folder structure (frontend/backend/docs)", Minutes: 25, Resource: "Folder structure guide", ResourceURL: "https://www.freecodecamp.org/news/scalable-folder-structure-for-modern-web-apps/"},
	{ID: 4, Group: "Planning & Setup", Description: "Initialize Git repo & push to GitHub", Minutes: 25, Resource: "GitHub basics", ResourceURL: "https://www.youtube.com/watch?v=RGOj5yH7evk"},
	{ID: 5, Group: "Planning & Setup", Description: "Setup .env.example & Tailwind config", Minutes: 25, Resource: "Tailwind config", ResourceURL: "https://tailwindcss.com/docs/configuration"},
	{ID: 6, Group: "Backend Development", Description: "Scaffold Express.js app & test hello world", Minutes: 25, Resource: "Express intro", ResourceURL: "https://developer.mozilla.org/en-US/docs/Learn/Server-side/Express_Nodejs/Introduction"},
	{ID: 7, Group: "Backend Development", Description: "Connect MongoDB Atlas & define schemas (User, Package, Booking, Story)", Minutes: 25, Resource: "Mongoose", ResourceURL: "https://mongoosejs.com/docs/index.html"},
	{ID: 8, Group: "Backend Development", Description: "Build auth (JWT, Google login, logout)", Minutes: 25, Resource: "JWT auth", ResourceURL: "https://www.digitalocean.com/community/tutorials/nodejs-jwt-expressjs"},
	{ID: 9, Group: "Backend Development", Description: "Build password reset & forgot", Minutes: 25, Resource: "Password reset", ResourceURL: "https://www.smashingmagazine.com/2018/01/secure-password-reset/"},
	{ID: 10, Group: "Backend Development", Description: "Build bookings CRUD (with guide assignment & status)", Minutes: 25, Resource: "REST + Mongoose", ResourceURL: "https://mongoosejs.com/docs/guide.html"},
	{ID: 11, Group: "Backend Development", Description: "Build stories CRUD (with images)", Minutes: 25, Resource: "REST + Mongoose", ResourceURL: "https://mongoosejs.com/docs/guide.html"},
	{ID: 12, Group: "Backend Development", Description: "Build admin dashboards endpoints & analytics", Minutes: 25, Resource: "MongoDB Aggregation", ResourceURL: "https://docs.mongodb.com/manual/aggregation/"},
	{ID: 13, Group: "Backend Development", Description: "Integrate Stripe payments endpoint & webhooks", Minutes: 25, Resource: "Stripe", ResourceURL: "https://stripe.com/docs/payments"},
	{ID: 14, Group: "Backend Development", Description: "Test all APIs in Postman", Minutes: 25, Resource: "Postman", ResourceURL: "https://www.postman.com/api-platform/"},
	{ID: 15, Group: "Frontend Development", Description: "Scaffold Next.js app with Tailwind & DaisyUI", Minutes: 25, Resource: "Next.js Learn", ResourceURL: "https://nextjs.org/learn"},
	{ID: 16, Group: "Frontend Development", Description: "Setup global layout, navbar & footer", Minutes: 25, Resource: "Tailwind & DaisyUI", ResourceURL: "https://daisyui.com/"},
	{ID: 17, Group: "Frontend Development", Description: "Build login/register pages (connect to backend)", Minutes: 25, Resource: "Clerk or custom", ResourceURL: "https://clerk.dev/docs"},
	{ID: 18, Group: "Frontend Development", Description: "Build Tourist dashboard: profile, bookings, stories", Minutes: 25, Resource: "Next.js dynamic routes", ResourceURL: "https://nextjs.org/docs/routing/dynamic-routes"},
	{ID: 19, Group: "Frontend Development", Description: "Build Guide dashboard: assigned tours, stories", Minutes: 25, Resource: "Tailwind components", ResourceURL: "https://tailwindcss.com/docs/"},
	{ID: 20, Group: "Frontend Development", Description: "Build Admin dashboard: manage users, packages, analytics", Minutes: 25, Resource: "DaisyUI tables/cards", ResourceURL: "https://daisyui.com/components/"},
	{ID: 21, Group: "Frontend Development", Description: "Build booking table with pay & cancel actions", Minutes: 25, Resource: "Tailwind tables", ResourceURL: "https://tailwindcss.com/docs/"},
	{ID: 22, Group: "Frontend Development", Description: "Add mobile responsiveness & animations", Minutes: 25, Resource: "Tailwind responsive", ResourceURL: "https://tailwindcss.com/docs/responsive-design"},
	{ID: 23, Group: "Frontend Development", Description: "Polish notifications & loading states", Minutes: 25, Resource: "React Toastify", ResourceURL: "https://fkhadra.github.io/react-toastify/introduction"},
	{ID: 24, Group: "Data, QA & Deployment", Description: "Seed DB with sample data & test users", Minutes: 25, Resource: "MongoDB scripts", ResourceURL: "https://docs.mongodb.com/manual/tutorial/write-scripts-for-the-mongo-shell/"},
	{ID: 25, Group: "Data, QA & Deployment", Description: "Write README & API docs", Minutes: 25, Resource: "Make a README", ResourceURL: "https://www.makeareadme.com/"},
	{ID: 26, Group: "Data, QA & Deployment", Description: "Deploy frontend on Vercel", Minutes: 25, Resource: "Vercel deploy", ResourceURL: "https://vercel.com/docs"},
	{ID: 27, Group: "Data, QA & Deployment", Description: "Deploy backend on Render", Minutes: 25, Resource: "Render deploy", ResourceURL: "https://render.com/docs"},
	{ID: 28, Group: "Data, QA & Deployment", Description: "Run end-to-end QA test all flows", Minutes: 25, Resource: "QA checklist", ResourceURL: "https://www.softwaretestinghelp.com/qa-testing-checklist/"},
	{ID: 29, Group: "Data, QA & Deployment", Description: "Collect feedback & iterate", Minutes: 25, Resource: "User interviews", ResourceURL: "https://www.nngroup.com/articles/user-interviews/"},
}
