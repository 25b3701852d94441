package site

const cssContent = `/* ============ CSS Variables ============ */
:root {
  --primary: #2563eb;
  --primary-dark: #1d4ed8;
  --text: #1f2937;
  --text-muted: #6b7280;
  --bg: #ffffff;
  --bg-alt: #f3f4f6;
  --radius: 12px;
  --shadow: 0 4px 20px rgba(0, 0, 0, 0.08);
  --header-height: 64px;
}

* { margin: 0; padding: 0; box-sizing: border-box; }

html { scroll-behavior: smooth; }

body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  color: var(--text);
  background: var(--bg);
  line-height: 1.6;
}

a { color: inherit; text-decoration: none; }

.container { max-width: 1100px; margin: 0 auto; padding: 0 20px; }

/* ============ Header ============ */
.header {
  position: fixed; top: 0; left: 0; right: 0;
  height: var(--header-height);
  background: rgba(255, 255, 255, 0.95);
  box-shadow: 0 1px 0 rgba(0, 0, 0, 0.06);
  z-index: 100;
}

.navbar { display: flex; align-items: center; justify-content: space-between; height: 100%; }

.logo-img { height: 40px; width: auto; }

.nav-menu { display: flex; gap: 28px; list-style: none; }
.nav-menu a { font-weight: 500; transition: color 0.2s; }
.nav-menu a:hover { color: var(--primary); }

.hamburger { display: none; background: none; border: 0; cursor: pointer; }
.hamburger span {
  display: block; width: 24px; height: 2px; margin: 5px 0;
  background: var(--text); transition: transform 0.3s, opacity 0.3s;
}
.hamburger.active span:nth-child(1) { transform: translateY(7px) rotate(45deg); }
.hamburger.active span:nth-child(2) { opacity: 0; }
.hamburger.active span:nth-child(3) { transform: translateY(-7px) rotate(-45deg); }

/* ============ Hero ============ */
.hero { padding: calc(var(--header-height) + 60px) 0 80px; background: var(--bg-alt); }
.hero-noidung { text-align: center; }
.hero-avatar {
  width: 160px; height: 160px; border-radius: 50%;
  object-fit: cover; box-shadow: var(--shadow); margin-bottom: 24px;
}
.hero-ten { font-size: 2.5rem; }
.hero-chuc-danh { font-size: 1.25rem; color: var(--primary); margin-bottom: 16px; }
.hero-mo-ta { max-width: 640px; margin: 0 auto 32px; color: var(--text-muted); }
.hero-buttons { display: flex; gap: 16px; justify-content: center; flex-wrap: wrap; }

.btn { display: inline-block; padding: 12px 28px; border-radius: 999px; font-weight: 600; transition: all 0.2s; }
.btn-primary { background: var(--primary); color: #fff; }
.btn-primary:hover { background: var(--primary-dark); }
.btn-secondary { border: 2px solid var(--primary); color: var(--primary); }
.btn-secondary:hover { background: var(--primary); color: #fff; }

/* ============ Sections ============ */
.skills, .projects { padding: 80px 0; }
.projects { background: var(--bg-alt); }
.section-title { text-align: center; font-size: 2rem; margin-bottom: 48px; }

.skills-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(220px, 1fr)); gap: 24px; }
.skill-item {
  background: var(--bg); padding: 28px; border-radius: var(--radius);
  box-shadow: var(--shadow); text-align: center; transition: transform 0.2s;
}
.skill-item:hover { transform: translateY(-4px); }
.skill-icon { font-size: 2.5rem; margin-bottom: 12px; }
.skill-ten { margin-bottom: 8px; }
.skill-mo-ta { color: var(--text-muted); font-size: 0.95rem; }

.projects-list { display: grid; gap: 24px; }
.project-item { background: var(--bg); border-radius: var(--radius); box-shadow: var(--shadow); }
.project-noidung { padding: 28px; }
.project-ten { margin-bottom: 8px; }
.project-mo-ta { color: var(--text-muted); margin-bottom: 16px; }
.project-links { display: flex; gap: 16px; }
.project-link { color: var(--primary); font-weight: 600; }
.project-link:hover { text-decoration: underline; }

/* Markdown descriptions */
.hero-mo-ta pre, .skill-mo-ta pre, .project-mo-ta pre {
  text-align: left; overflow-x: auto; padding: 12px; border-radius: 8px; background: var(--bg-alt);
}

/* ============ Footer ============ */
.footer { padding: 60px 0 30px; background: #111827; color: #e5e7eb; }
.footer-noidung { text-align: center; }
.footer-noidung h3 { font-size: 1.5rem; margin-bottom: 12px; }
.social-links { display: flex; gap: 16px; justify-content: center; margin: 24px 0; }
.social-link {
  display: inline-flex; align-items: center; justify-content: center;
  width: 44px; height: 44px; border-radius: 50%;
  background: rgba(255, 255, 255, 0.08); font-size: 1.25rem; transition: background 0.2s;
}
.social-link:hover { background: var(--primary); }
.footer-copyright { color: #9ca3af; font-size: 0.875rem; }

/* ============ Responsive ============ */
@media (max-width: 768px) {
  .hamburger { display: block; }
  .nav-menu {
    position: fixed; top: var(--header-height); left: -100%;
    width: 100%; flex-direction: column; gap: 0;
    background: var(--bg); box-shadow: var(--shadow);
    transition: left 0.3s;
  }
  .nav-menu.active { left: 0; }
  .nav-menu li { padding: 14px 20px; border-bottom: 1px solid var(--bg-alt); }
  .hero-ten { font-size: 2rem; }
}
`

// jsContent mirrors the server-side binder for the browser and, when served
// by "landing serve", reloads the page after every rebuild.
const jsContent = `(function() {
  "use strict";

  // ===== Menu toggle =====
  var hamburger = document.getElementById("hamburger");
  var navMenu = document.getElementById("navMenu");

  if (hamburger && navMenu) {
    hamburger.addEventListener("click", function() {
      hamburger.classList.toggle("active");
      navMenu.classList.toggle("active");
    });

    // Close the menu after picking a link.
    navMenu.querySelectorAll("a").forEach(function(link) {
      link.addEventListener("click", function() {
        hamburger.classList.remove("active");
        navMenu.classList.remove("active");
      });
    });
  }

  // ===== Smooth scroll =====
  document.querySelectorAll('a[href^="#"]').forEach(function(anchor) {
    anchor.addEventListener("click", function(e) {
      e.preventDefault();
      var id = this.getAttribute("href").slice(1);
      var target = id ? document.getElementById(id) : null;
      if (target) {
        target.scrollIntoView({ behavior: "smooth", block: "start" });
      }
    });
  });

  // ===== Live reload =====
  if (location.protocol !== "http:" && location.protocol !== "https:") {
    return;
  }
  var scheme = location.protocol === "https:" ? "wss://" : "ws://";
  var lastBuild = null;

  function connect() {
    var ws;
    try {
      ws = new WebSocket(scheme + location.host + "/ws/reload");
    } catch (e) {
      return;
    }
    ws.onmessage = function(ev) {
      var msg;
      try { msg = JSON.parse(ev.data); } catch (e) { return; }
      if (msg.type !== "reload") { return; }
      if (lastBuild === null) { lastBuild = msg.build_id; return; }
      if (msg.build_id !== lastBuild) { location.reload(); }
    };
    ws.onclose = function(ev) {
      // Static hosting has no reload endpoint; only retry after a real connection.
      if (ev.wasClean || lastBuild !== null) { setTimeout(connect, 1000); }
    };
  }

  connect();
})();
`
